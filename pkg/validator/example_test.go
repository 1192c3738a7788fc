package validator_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/rulekit/pkg/messages"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type Account struct {
	Email string
	Age   int
}

// Example_target demonstrates declaring rules for a type and validating a
// decoded object against them.
func Example_target() {
	store := validator.NewMetadataStore()
	err := validator.Describe[Account](store).
		Field("email").Label("Email").Rule("required").Rule("email").
		Field("age").Rule("min", 18).
		Err()
	if err != nil {
		panic(err)
	}

	engine := validator.New(validator.WithStore(store))
	res := engine.ValidateTarget(context.Background(), validator.TargetOf[Account](), map[string]any{
		"email": "not-an-email",
		"age":   16,
	}, validator.WithSequentialFields())

	fmt.Println("success:", res.Success)
	for _, e := range res.Errors {
		fmt.Printf("%s (%s): %s\n", e.PropertyName, e.RuleName, e.Message)
	}

	// Output:
	// success: false
	// email (email): must be a valid email address
	// age (min): must be at least 18
}

// Example_translated demonstrates rendering failures from the built-in
// message catalogs in the caller's language.
func Example_translated() {
	catalog, err := messages.New(context.Background(), messages.Builtin)
	if err != nil {
		panic(err)
	}

	engine := validator.New(validator.WithDefaultTranslator(catalog))
	ctx := messages.WithLocale(context.Background(), "de")

	res := engine.Validate(ctx, 15, validator.Rules("numberLessThan:10"), validator.WithField("Menge"))
	fmt.Println(res.Error.Message)

	// Output:
	// Menge muss kleiner als 10 sein
}

// Example_customRule demonstrates registering a rule written against the
// loose contract.
func Example_customRule() {
	registry := validator.NewRegistry()
	validator.RegisterBuiltins(registry)
	registry.MustRegister("even", validator.Func(func(_ context.Context, in validator.RuleInput) (any, error) {
		if n, ok := in.Value.(int); ok && n%2 == 0 {
			return true, nil
		}
		return "must be even", nil
	}))

	engine := validator.New(validator.WithRegistry(registry))
	for _, v := range []int{4, 7} {
		res := engine.Validate(context.Background(), v, validator.Rules("required", "even"))
		fmt.Println(v, res.Success, res.Err())
	}

	// Output:
	// 4 true <nil>
	// 7 false must be even
}
