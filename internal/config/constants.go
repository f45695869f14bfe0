package config

// SourceFileExt is the default extension for source files this compiler
// accepts.
const SourceFileExt = ".ts"

// SourceFileExtensions lists every recognized source file extension.
var SourceFileExtensions = []string{".ts", ".tsx"}

// ConfigFileName is the project configuration file this compiler looks
// for, walking up from the entry file's directory the way a .gitignore
// search does.
const ConfigFileName = "tsc.yaml"

// LengthPropertyName is the special IndexedAccessType index that lowers
// to Length instead of IndexAccess: `T["length"]`.
const LengthPropertyName = "length"
