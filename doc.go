// Package ini implements INI parsing and serializing.
//
// An INI document is a list of key=value lines, optionally grouped into
// sections by [Name] headers. Values are untyped text; INI
// defers scalar parsing until the document is read into a Go type.
//
//	; a basic INI document
//	name = example
//	[Server]
//	host = localhost
//	port = 8080
//
// Like the builtin json package, ini can automatically convert between Go
// types and INI documents. A named struct type corresponds to the section
// with the same name, and a map or anonymous struct corresponds to the bare
// pairs at the top of the document:
//
//	type Server struct {
//	  Host string `ini:"host"`
//	  Port int    `ini:"port"`
//	}
//
//	server := Server{}
//	ini.Unmarshal(data, &server)
//
// If your type implements the [encoding.TextMarshaler] and
// [encoding.TextUnmarshaler] then ini will use that to convert between a
// value and your type, otherwise values are parsed using the [strconv]
// package. Types that need full control can implement [Marshaler] and
// [Unmarshaler], which drive a [Serializer] or [Deserializer] directly.
//
// INI has no lists and no nesting, so slices, maps inside maps, and structs
// inside structs cannot be serialized; those return errors wrapping
// [ErrUnsupportedType].
//
// The [syntax] subpackage exposes the tokenizer, parse tree and printer, and
// the [schema] subpackage validates documents against a schema.
//
// [syntax]: https://pkg.go.dev/github.com/ConradIrwin/ini-go/syntax
// [schema]: https://pkg.go.dev/github.com/ConradIrwin/ini-go/schema
package ini
