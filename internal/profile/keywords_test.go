package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_FrequencyThresholdAndOrder(t *testing.T) {
	text := "Golang golang golang Kubernetes kubernetes gRPC grpc react"

	keywords := ExtractKeywords(text)

	// frequency descending, ties alphabetical
	assert.Equal(t, []string{"golang", "grpc", "kubernetes"}, keywords)
	assert.NotContains(t, keywords, "react") // appears once
}

func TestExtractKeywords_KeepsTechnicalCharacters(t *testing.T) {
	keywords := ExtractKeywords("C++ c++ ASP.NET asp.net")

	assert.Contains(t, keywords, "c++")
	// the dot splits the token; both halves survive on their own
	assert.Contains(t, keywords, "asp")
	assert.Contains(t, keywords, "net")
}

func TestExtractKeywords_DropsShortWords(t *testing.T) {
	keywords := ExtractKeywords("we we do do it it again again")

	assert.Equal(t, []string{"again"}, keywords)
}

func TestExtractKeywords_TwoCharWordsDroppedRegardlessOfFrequency(t *testing.T) {
	keywords := ExtractKeywords("go go go go ml ml ml")

	assert.Empty(t, keywords)
}

func TestExtractKeywords_CapsAtFifty(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 60; i++ {
		word := "keyword" + string(rune('a'+i%26)) + string(rune('a'+i/26))
		b.WriteString(word + " " + word + " ")
	}

	keywords := ExtractKeywords(b.String())

	assert.Len(t, keywords, 50)
}

func TestExtractKeywords_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractKeywords(""))
}
