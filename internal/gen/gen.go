// Package gen discovers integer enum declarations with go/packages and
// renders their state descriptor methods. It is the engine behind the
// fsmgen command.
package gen

import (
	"cmp"
	"errors"
	"fmt"
	"go/constant"
	"go/types"
	"slices"

	"golang.org/x/tools/go/packages"
)

var (
	// Enum discovery
	ErrTypeNotFound = errors.New("type not found in package")
	ErrNotAnEnum    = errors.New("type is not an integer enum")
	ErrNoConstants  = errors.New("type has no constants")

	// Value validation
	ErrNegativeValue = errors.New("constant values must not be negative")
	ErrAliasedValue  = errors.New("constant values must be distinct")
	ErrSparseValues  = errors.New("constant values must be contiguous from zero")
)

// Enum describes an integer constant set discovered in a package. Consts are
// ordered by value, which validation guarantees to be exactly 0..N-1.
type Enum struct {
	Package string
	Type    string
	Consts  []Const
}

// Const is a single declared constant of the enum type.
type Const struct {
	Name  string
	Index int64
}

// Load type-checks the package in dir and extracts the constants of
// typeName. The type must be a defined integer type whose package-level
// constants cover the values 0..N-1 exactly once each.
func Load(dir, typeName string) (*Enum, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %s: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("failed to type-check package %s: %v", pkg.Name, pkg.Errors[0])
	}

	scope := pkg.Types.Scope()
	obj := scope.Lookup(typeName)
	if obj == nil {
		return nil, fmt.Errorf("%w: %s in package %s", ErrTypeNotFound, typeName, pkg.Name)
	}
	if _, ok := obj.(*types.TypeName); !ok {
		return nil, fmt.Errorf("%w: %s is not a type", ErrNotAnEnum, typeName)
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a defined type", ErrNotAnEnum, typeName)
	}
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return nil, fmt.Errorf("%w: %s has underlying type %s", ErrNotAnEnum, typeName, named.Underlying())
	}

	consts, err := collectConsts(scope, named)
	if err != nil {
		return nil, err
	}
	if len(consts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoConstants, typeName)
	}
	if err := validateIndexes(consts); err != nil {
		return nil, err
	}

	return &Enum{Package: pkg.Name, Type: typeName, Consts: consts}, nil
}

func collectConsts(scope *types.Scope, named *types.Named) ([]Const, error) {
	var consts []Const
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(c.Type(), named) {
			continue
		}

		v, exact := constant.Int64Val(constant.ToInt(c.Val()))
		if !exact {
			return nil, fmt.Errorf("constant %s has a value outside the int64 range", name)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: %s = %d", ErrNegativeValue, name, v)
		}
		consts = append(consts, Const{Name: name, Index: v})
	}

	slices.SortFunc(consts, func(a, b Const) int { return cmp.Compare(a.Index, b.Index) })
	return consts, nil
}

func validateIndexes(consts []Const) error {
	for i, c := range consts {
		if c.Index == int64(i) {
			continue
		}
		if i > 0 && consts[i-1].Index == c.Index {
			return fmt.Errorf("%w: %s and %s are both %d", ErrAliasedValue, consts[i-1].Name, c.Name, c.Index)
		}
		return fmt.Errorf("%w: missing value %d", ErrSparseValues, i)
	}
	return nil
}
