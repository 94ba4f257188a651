// Package codegen generates boolean enum types.
//
// Each requested enum becomes a Go defined type over bool with Yes and No
// constants, a FromBool constructor, a Default, and Bool, Not and String
// methods. With the serde feature enabled, JSON, YAML and TOML
// marshalling methods can be added which accept only booleans.
//
// Requests come from //boolenum: directives in package sources:
//
//	//boolenum:gen=DryRun,pub,serde,formats=json+yaml
//
// or from a boolenum.yaml manifest next to them. Generated code appears
// in <package>_boolenum.go.
//
// # Related Packages
//
//   - github.com/signadot/boolenum/enum - Generation requests
//   - github.com/signadot/boolenum/serde - Serialization glue
package codegen
