package messages

import "embed"

//go:embed locales/*.yaml
var builtinFS embed.FS

// Builtin holds English and German messages for the built-in validation
// rules under the "validation." prefix.
var Builtin Source = FSSource{FS: builtinFS, Dir: "locales"}
