// Package serde holds the runtime glue imported by boolenum generated code
// when serialization is enabled.
//
// Generated types marshal as a plain boolean in every format. Unmarshalling
// decodes the input into a generic value and hands it to [VisitBool], which
// accepts only a boolean:
//
//	func (x *DryRun) UnmarshalJSON(data []byte) error {
//	    b, err := serde.UnmarshalJSONBool("flags.DryRun", data)
//	    if err != nil {
//	        return err
//	    }
//	    *x = DryRunFromBool(b)
//	    return nil
//	}
//
// Anything else fails with a *[TypeError] wrapping [ErrExpectedBool].
//
// # Related Packages
//
//   - github.com/signadot/boolenum/codegen - Code generation
package serde
