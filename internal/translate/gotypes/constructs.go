// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/dacolabs/gqlscaffold/internal/translate"
)

// genConstruct adds the declarations of one construct to f.
func genConstruct(f *jen.File, c translate.Construct) error {
	switch c := c.(type) {
	case *translate.ObjectConstruct:
		genObject(f, c)
	case *translate.InterfaceConstruct:
		genInterface(f, c)
	case *translate.EnumConstruct:
		genEnum(f, c)
	case *translate.InputConstruct:
		genInput(f, c)
	case *translate.UnionConstruct:
		genUnion(f, c)
	default:
		return fmt.Errorf("unsupported construct %T", c)
	}
	return nil
}

func tags(wire string) map[string]string {
	return map[string]string{"json": wire, "graphql": wire}
}

func marker(name string) string {
	return "is" + name
}

func genObject(f *jen.File, c *translate.ObjectConstruct) {
	name := c.Name.Name
	comment(f.Group, fmt.Sprintf("%s is the GraphQL object type %s.", name, c.Name.Wire), c.Description, false, "")
	f.Type().Id(name).StructFunc(func(g *jen.Group) {
		for _, p := range c.Properties {
			if p.Description != "" || p.Deprecated {
				comment(g, fmt.Sprintf("%s is the %s field.", p.Name, p.Wire), p.Description, p.Deprecated, p.Reason)
			}
			g.Id(p.Name).Add(goType(p.Type)).Tag(tags(p.Wire))
		}
	})
	f.Line()

	for _, iface := range c.Interfaces {
		f.Func().Params(jen.Id(name)).Id(marker(iface.Name)).Params().Block()
	}
	for _, u := range c.Unions {
		f.Func().Params(jen.Id(name)).Id(marker(u.Name)).Params().Block()
	}
	if len(c.Interfaces)+len(c.Unions) > 0 {
		f.Line()
	}

	for _, g := range c.Getters {
		f.Commentf("%s returns the %s field.", g.Name, g.Property.Wire)
		f.Func().Params(jen.Id("v").Id(name)).Id(g.Name).Params().Add(goType(g.Property.Type)).Block(
			jen.Return(jen.Id("v").Dot(g.Property.Name)),
		)
		f.Line()
	}

	genMethods(f, name, c.Methods, true)
}

func genInterface(f *jen.File, c *translate.InterfaceConstruct) {
	name := c.Name.Name
	comment(f.Group, fmt.Sprintf("%s is the GraphQL interface %s.", name, c.Name.Wire), c.Description, false, "")
	if len(c.Implementors) > 0 {
		f.Comment("//")
		f.Comment("Implemented by:")
		for _, impl := range c.Implementors {
			f.Comment("  - " + impl.Name)
		}
	}
	f.Type().Id(name).InterfaceFunc(func(g *jen.Group) {
		g.Id(marker(name)).Params()
		for _, s := range c.Shared {
			g.Id(s.Name).Params().Add(goType(s.Property.Type))
		}
	})
	f.Line()

	genCarrier(f, c.Carrier, name, c.Implementors)
	genMethods(f, name, c.Methods, false)
}

// genCarrier emits the struct an interface or union field decodes into: the
// __typename plus one inline fragment per possible type, and Value returning
// the fragment __typename names.
func genCarrier(f *jen.File, carrier translate.Ident, iface string, members []translate.Ident) {
	name := carrier.Name
	f.Commentf("%s holds a %s selected with one inline fragment per possible type.", name, carrier.Wire)
	f.Comment("Only the fragment named by Typename is filled.")
	f.Type().Id(name).StructFunc(func(g *jen.Group) {
		g.Id("Typename").String().Tag(tags("__typename"))
		for _, m := range members {
			g.Id(m.Name).Id(m.Name).Tag(map[string]string{"graphql": "... on " + m.Wire})
		}
	})
	f.Line()

	f.Commentf("Value returns the %s named by Typename, or nil for a type unknown at generation time.", carrier.Wire)
	f.Func().Params(jen.Id("v").Id(name)).Id("Value").Params().Id(iface).BlockFunc(func(g *jen.Group) {
		if len(members) > 0 {
			g.Switch(jen.Id("v").Dot("Typename")).BlockFunc(func(g *jen.Group) {
				for _, m := range members {
					g.Case(jen.Lit(m.Wire)).Block(jen.Return(jen.Id("v").Dot(m.Name)))
				}
			})
		}
		g.Return(jen.Nil())
	})
	f.Line()
}

// genMethods emits the arguments struct of every field with arguments and,
// for objects, the selector method returning a Selection.
func genMethods(f *jen.File, typeName string, methods []translate.Method, selectors bool) {
	for _, m := range methods {
		genArgs(f, m)

		if !selectors {
			continue
		}
		comment(f.Group, fmt.Sprintf("%s selects the %s field with arguments.", m.Name, m.Wire), m.Description, m.Deprecated, m.Reason)
		f.Func().Params(jen.Id(typeName)).Id(m.Name).Params(jen.Id("args").Id(m.ArgsType.Name)).Id("Selection").Types(goType(m.Type)).Block(
			jen.Return(jen.Id("Selection").Types(goType(m.Type)).Values(jen.Dict{
				jen.Id("Field"):     jen.Lit(m.Wire),
				jen.Id("Arguments"): jen.Id("args").Dot("Variables").Call(),
			})),
		)
		f.Line()
	}
}

func genArgs(f *jen.File, m translate.Method) {
	name := m.ArgsType.Name
	f.Commentf("%s holds the arguments of %s.", name, m.ArgsType.Wire)
	f.Type().Id(name).StructFunc(func(g *jen.Group) {
		for _, a := range m.Args {
			if a.Description != "" || a.Default != nil {
				desc := a.Description
				if a.Default != nil {
					if desc != "" {
						desc += "\n"
					}
					desc += "Defaults to " + *a.Default + "."
				}
				comment(g, fmt.Sprintf("%s is the %s argument.", a.Name, a.Wire), desc, false, "")
			}
			g.Id(a.Name).Add(argType(a)).Tag(map[string]string{"json": a.Wire})
		}
	})
	f.Line()

	dict := jen.Dict{}
	var optional []translate.Property
	for _, a := range m.Args {
		if optionalArg(a) {
			optional = append(optional, a)
			continue
		}
		dict[jen.Lit(a.Wire)] = variable(a)
	}

	f.Comment("Variables returns the arguments that are set, keyed by name and")
	f.Comment("declared with their schema types.")
	f.Func().Params(jen.Id("a").Id(name)).Id("Variables").Params().Map(jen.String()).Any().BlockFunc(func(g *jen.Group) {
		g.Id("v").Op(":=").Map(jen.String()).Any().Values(dict)
		for _, a := range optional {
			g.If(jen.Id("a").Dot(a.Name).Dot("IsSet").Call()).Block(
				jen.Id("v").Index(jen.Lit(a.Wire)).Op("=").Add(variable(a)),
			)
		}
		g.Return(jen.Id("v"))
	})
	f.Line()
}

func variable(a translate.Property) *jen.Statement {
	return jen.Id("Var").Call(jen.Lit(a.Type.GraphQL), jen.Id("a").Dot(a.Name))
}

func genEnum(f *jen.File, c *translate.EnumConstruct) {
	name := c.Name.Name
	comment(f.Group, fmt.Sprintf("%s is the GraphQL enum %s.", name, c.Name.Wire), c.Description, false, "")
	f.Type().Id(name).String()
	f.Line()

	f.Const().DefsFunc(func(g *jen.Group) {
		for _, v := range c.Cases {
			if v.Description != "" || v.Deprecated {
				comment(g, fmt.Sprintf("%s is %s.", v.Name, v.Wire), v.Description, v.Deprecated, v.Reason)
			}
			g.Id(v.Name).Id(name).Op("=").Lit(v.Wire)
		}
	})
	f.Line()

	cases := make([]jen.Code, len(c.Cases))
	for i, v := range c.Cases {
		cases[i] = jen.Id(v.Name)
	}
	f.Commentf("IsValid reports whether e is a value of %s.", c.Name.Wire)
	f.Func().Params(jen.Id("e").Id(name)).Id("IsValid").Params().Bool().Block(
		jen.Switch(jen.Id("e")).Block(
			jen.Case(cases...).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	)
	f.Line()
}

func genInput(f *jen.File, c *translate.InputConstruct) {
	name := c.Name.Name
	comment(f.Group, fmt.Sprintf("%s is the GraphQL input type %s.", name, c.Name.Wire), c.Description, false, "")
	f.Comment("//")
	f.Comment("Fields left unset are omitted from the payload; use Null to send an explicit null.")
	f.Type().Id(name).StructFunc(func(g *jen.Group) {
		for _, p := range c.Properties {
			desc := p.Description
			if !p.Type.Nullable {
				if desc != "" {
					desc += "\n"
				}
				desc += "Required."
			}
			if p.Default != nil {
				if desc != "" {
					desc += "\n"
				}
				desc += "Defaults to " + *p.Default + "."
			}
			if desc != "" {
				comment(g, fmt.Sprintf("%s is the %s field (%s).", p.Name, p.Wire, p.Type.GraphQL), desc, false, "")
			}
			g.Id(p.Name).Add(optionalType(p.Type)).Tag(map[string]string{"json": p.Wire})
		}
	})
	f.Line()

	f.Comment("MarshalJSON encodes the fields that are set.")
	f.Func().Params(jen.Id("v").Id(name)).Id("MarshalJSON").Params().Params(jen.Index().Byte(), jen.Error()).BlockFunc(func(g *jen.Group) {
		g.Id("m").Op(":=").Make(jen.Map(jen.String()).Any(), jen.Lit(len(c.Properties)))
		for _, p := range c.Properties {
			g.If(jen.Id("v").Dot(p.Name).Dot("IsSet").Call()).Block(
				jen.Id("m").Index(jen.Lit(p.Wire)).Op("=").Id("v").Dot(p.Name),
			)
		}
		g.Return(jen.Qual("encoding/json", "Marshal").Call(jen.Id("m")))
	})
	f.Line()
}

func genUnion(f *jen.File, c *translate.UnionConstruct) {
	name := c.Name.Name
	comment(f.Group, fmt.Sprintf("%s is the GraphQL union %s.", name, c.Name.Wire), c.Description, false, "")
	f.Comment("//")
	if c.Degraded {
		f.Comment("The possible types were not part of the schema snapshot, so no type implements it.")
	} else {
		f.Comment("Members:")
		for _, m := range c.Members {
			f.Comment("  - " + m.Name)
		}
	}
	f.Type().Id(name).Interface(jen.Id(marker(name)).Params())
	f.Line()

	genCarrier(f, c.Carrier, name, c.Members)
}
