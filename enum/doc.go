// Package enum describes a boolean enum to generate.
//
// A [Spec] is one request: a name, a [Visibility] and whether the
// serialization facet is wanted. [Features] is the set of generator
// capabilities; asking for serialization while the "serde" feature is
// off fails with [ErrSerdeNotEnabled].
//
//	s := enum.New("DryRun", enum.Public, true)
//	if err := s.Validate(enum.Features{Serde: true}); err != nil {
//	    return err
//	}
//	names, _ := s.Names() // DryRun, DryRunYes, DryRunNo, DryRunFromBool, DryRunDefault
//
// # Related Packages
//
//   - github.com/signadot/boolenum/codegen - Code generation
//   - github.com/signadot/boolenum/serde - Serialization glue
package enum
