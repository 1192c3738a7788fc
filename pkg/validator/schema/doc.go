// Package schema declares validation rules from YAML or JSON documents.
//
// A parsed Schema is applied to a validator.MetadataStore; the declaration
// order of the document becomes the execution order of the rules.
//
//	s, err := schema.LoadFile(ctx, "rules.yaml")
//	if err != nil {
//		return err
//	}
//	if err := s.Apply(validator.DefaultStore); err != nil {
//		return err
//	}
//	res := validator.ValidateTarget(ctx, "User", data)
package schema
