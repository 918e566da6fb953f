package config

// Template tokens. These name entries of the template tree and the
// placeholders inside its files; they are never user-editable.
const (
	CMakeListsFile        = "CMakeLists.txt"
	EditorConfigFile      = ".editorconfig"
	GitignoreTemplateFile = "not_a_gitignore_=)"
	GitignoreFile         = ".gitignore"
	VcpkgJSONFile         = "vcpkg.json"
	MainFileName          = "main.cpp"
	SrcFolder             = "src"
	AppNamePlaceholder    = "AWESOME_CPP_CMAKE_NAME"
)

const DefaultStandard = "17"
const DefaultVersion = "0.1.0"
const VcpkgSchemaURL = "https://raw.githubusercontent.com/microsoft/vcpkg/master/scripts/vcpkg.schema.json"

// Standards lists the supported C++ standards as bare numerals, oldest first.
var Standards = []string{"98", "11", "14", "17", "20", "23"}

// StandardLabel returns the display form of a bare standard numeral ("20" -> "C++20").
func StandardLabel(std string) string {
	return "C++" + std
}
