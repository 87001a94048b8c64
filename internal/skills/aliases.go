package skills

// DefaultAliases maps canonical skill names to their common variants.
// The table is built once at construction and read-only afterward.
var DefaultAliases = map[string][]string{
	"javascript":          {"js", "ecmascript", "es6"},
	"typescript":          {"ts"},
	"python":              {"py", "python3"},
	"go":                  {"golang"},
	"java":                {"jvm"},
	"c#":                  {"csharp", "c sharp", ".net", "dotnet"},
	"c++":                 {"cpp", "cplusplus"},
	"ruby":                {"ruby on rails", "rails", "ror"},
	"php":                 {"laravel", "symfony"},
	"kubernetes":          {"k8s", "kube"},
	"docker":              {"containers", "containerization"},
	"amazon web services": {"aws", "ec2", "s3", "lambda"},
	"google cloud":        {"gcp", "google cloud platform"},
	"microsoft azure":     {"azure"},
	"postgresql":          {"postgres", "psql"},
	"mysql":               {"mariadb"},
	"mongodb":             {"mongo"},
	"redis":               {"valkey"},
	"elasticsearch":       {"elastic", "opensearch"},
	"react":               {"react.js", "reactjs"},
	"vue":                 {"vue.js", "vuejs"},
	"angular":             {"angular.js", "angularjs"},
	"node.js":             {"node", "nodejs"},
	"sql":                 {"structured query language"},
	"nosql":               {"non-relational databases"},
	"ci/cd":               {"continuous integration", "continuous delivery", "cicd"},
	"terraform":           {"iac", "infrastructure as code"},
	"machine learning":    {"ml", "deep learning"},
	"data science":        {"data analysis", "analytics"},
	"rest":                {"rest api", "restful", "rest apis"},
	"graphql":             {"gql"},
	"grpc":                {"protocol buffers", "protobuf"},
	"kafka":               {"apache kafka", "event streaming"},
	"git":                 {"github", "gitlab", "version control"},
	"linux":               {"unix", "bash", "shell scripting"},
	"agile":               {"scrum", "kanban"},
	"project management":  {"pmp", "program management"},
	"ui/ux":               {"user experience", "user interface design", "ux design"},
	"html":                {"html5"},
	"css":                 {"css3", "sass", "scss", "tailwind"},
	"swift":               {"swiftui", "ios development"},
	"kotlin":              {"android development"},
	"rust":                {"rustlang"},
}
