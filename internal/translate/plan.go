// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/dacolabs/gqlscaffold/internal/schema"
)

// Planner turns schema types into constructs.
//
// Plan may be called concurrently for different types: the planner only
// reads the index and its precomputed interface tables.
type Planner struct {
	index    *schema.Index
	resolver *Resolver
	namer    Namer

	// shared maps an interface name to the argument-less fields every
	// implementor declares with an identical canonical type.
	shared map[string][]sharedField
	// covariant holds the remaining argument-less fields.
	covariant map[string][]string
}

// NewPlanner creates a Planner and precomputes the shared fields of every interface.
func NewPlanner(idx *schema.Index, resolver *Resolver, namer Namer) (*Planner, error) {
	p := &Planner{
		index:     idx,
		resolver:  resolver,
		namer:     namer,
		shared:    make(map[string][]sharedField),
		covariant: make(map[string][]string),
	}
	for _, t := range idx.Schema().Types {
		if t.Kind != schema.KindInterface || t.IsMeta() {
			continue
		}
		if err := p.computeShared(t); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Planner) computeShared(iface *schema.Type) error {
	impls := p.index.Implementors(iface.Name)
	for _, f := range iface.Fields {
		if len(f.Args) > 0 {
			continue
		}
		want, err := p.resolver.Resolve(f.Type)
		if err != nil {
			return withReferrer(err, iface.Name, f.Name)
		}
		shared := true
		for _, impl := range impls {
			g := fieldByName(impl, f.Name)
			if g == nil || len(g.Args) > 0 {
				shared = false
				break
			}
			got, err := p.resolver.Resolve(g.Type)
			if err != nil {
				return withReferrer(err, impl.Name, g.Name)
			}
			if got != want {
				shared = false
				break
			}
		}
		if shared {
			p.shared[iface.Name] = append(p.shared[iface.Name], sharedField{
				wire:   f.Name,
				getter: p.getterName(f.Name, append([]*schema.Type{iface}, impls...)),
			})
		} else {
			p.covariant[iface.Name] = append(p.covariant[iface.Name], f.Name)
		}
	}
	return nil
}

// sharedField is a field exposed through the interface method set.
type sharedField struct {
	wire   string
	getter string
}

// getterName returns Get<Member>, or Get<Member>Field when a field of one of
// types already takes that identifier. All implementors use the same name.
func (p *Planner) getterName(wire string, types []*schema.Type) string {
	taken := make(map[string]bool)
	for _, t := range types {
		for _, f := range t.Fields {
			if !schema.IsMetaName(f.Name) {
				taken[p.namer.Member(f.Name)] = true
			}
		}
	}
	base := p.namer.Getter(p.namer.Member(wire))
	name := base
	for n := 1; taken[name]; n++ {
		name = base + "Field"
		if n > 1 {
			name += strconv.Itoa(n)
		}
	}
	return name
}

// Plan returns the construct for t, or nil when t produces none
// (scalars, introspection types and unsupported kinds).
func (p *Planner) Plan(t *schema.Type) (Construct, []Warning, error) {
	if t.IsMeta() {
		return nil, nil, nil
	}
	switch t.Kind {
	case schema.KindScalar:
		return nil, nil, nil
	case schema.KindObject:
		c, err := p.planObject(t)
		return c, nil, err
	case schema.KindInterface:
		return p.planInterface(t)
	case schema.KindEnum:
		c, err := p.planEnum(t)
		return c, nil, err
	case schema.KindInputObject:
		c, err := p.planInput(t)
		return c, nil, err
	case schema.KindUnion:
		return p.planUnion(t)
	default:
		return nil, []Warning{{
			Kind:    UnsupportedKind,
			Subject: t.Name,
			Message: fmt.Sprintf("kind %q is not supported, type skipped", t.Kind),
		}}, nil
	}
}

func (p *Planner) planObject(t *schema.Type) (*ObjectConstruct, error) {
	c := &ObjectConstruct{
		Name:        Ident{Name: p.namer.Type(t.Name), Wire: t.Name},
		Description: t.Description,
	}
	scope := NewScope(t.Name)

	var err error
	c.Properties, c.Methods, err = p.planMembers(t, c.Name.Name, scope)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, ref := range t.Interfaces {
		iface, ok := p.index.Lookup(ref.Name)
		if !ok {
			return nil, &schema.UnresolvedTypeError{Name: ref.Name, Referrer: t.Name}
		}
		if iface.Kind != schema.KindInterface {
			return nil, schema.NewMalformedSchemaError(t.Name, "", fmt.Sprintf("implements %s, which is %s", iface.Name, iface.Kind))
		}
		c.Interfaces = append(c.Interfaces, Ident{Name: p.namer.Type(iface.Name), Wire: iface.Name})

		for _, sf := range p.shared[iface.Name] {
			if seen[sf.getter] {
				continue
			}
			seen[sf.getter] = true
			prop, ok := propertyByWire(c.Properties, sf.wire)
			if !ok {
				continue
			}
			g := Getter{Name: sf.getter, Property: prop}
			if err := scope.Claim(g.Name, sf.wire+" (getter)"); err != nil {
				return nil, err
			}
			c.Getters = append(c.Getters, g)
		}
	}

	for _, u := range p.index.UnionsContaining(t.Name) {
		c.Unions = append(c.Unions, Ident{Name: p.namer.Type(u.Name), Wire: u.Name})
	}
	return c, nil
}

func (p *Planner) planInterface(t *schema.Type) (*InterfaceConstruct, []Warning, error) {
	c := &InterfaceConstruct{
		Name:        Ident{Name: p.namer.Type(t.Name), Wire: t.Name},
		Description: t.Description,
	}

	var err error
	c.Properties, c.Methods, err = p.planMembers(t, c.Name.Name, NewScope(t.Name))
	if err != nil {
		return nil, nil, err
	}

	for _, sf := range p.shared[t.Name] {
		if prop, ok := propertyByWire(c.Properties, sf.wire); ok {
			c.Shared = append(c.Shared, Getter{Name: sf.getter, Property: prop})
		}
	}
	for _, impl := range p.index.Implementors(t.Name) {
		c.Implementors = append(c.Implementors, Ident{Name: p.namer.Type(impl.Name), Wire: impl.Name})
	}
	c.Carrier = Ident{Name: p.namer.Carrier(c.Name.Name), Wire: t.Name}
	if err := claimCarrier(c.Carrier, c.Implementors); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for _, wire := range p.covariant[t.Name] {
		warnings = append(warnings, Warning{
			Kind:    CovariantField,
			Subject: t.Name + "." + wire,
			Message: "implementors narrow the field type, no getter in the interface",
		})
	}
	return c, warnings, nil
}

func (p *Planner) planMembers(t *schema.Type, typeIdent string, scope *Scope) ([]Property, []Method, error) {
	var (
		props   []Property
		methods []Method
	)
	for _, f := range t.Fields {
		if schema.IsMetaName(f.Name) {
			continue
		}
		ident := Ident{Name: p.namer.Member(f.Name), Wire: f.Name}
		if err := scope.Claim(ident.Name, f.Name); err != nil {
			return nil, nil, err
		}
		use, err := p.use(f.Type, t.Name, f.Name)
		if err != nil {
			return nil, nil, err
		}

		if len(f.Args) == 0 {
			props = append(props, Property{
				Ident:       ident,
				Description: f.Description,
				Deprecated:  f.IsDeprecated,
				Reason:      f.DeprecationReason,
				Type:        use,
			})
			continue
		}

		m := Method{
			Ident:       ident,
			Description: f.Description,
			Deprecated:  f.IsDeprecated,
			Reason:      f.DeprecationReason,
			Type:        use,
			ArgsType:    Ident{Name: p.namer.Args(typeIdent, ident.Name), Wire: t.Name + "." + f.Name},
		}
		m.Args, err = p.planInputValues(t.Name+"."+f.Name, f.Args, "Variables")
		if err != nil {
			return nil, nil, err
		}
		methods = append(methods, m)
	}
	return props, methods, nil
}

// planInputValues plans arguments or input fields in their own member scope.
// Reserved names are methods the emitted struct carries.
func (p *Planner) planInputValues(owner string, values []*schema.InputValue, reserved ...string) ([]Property, error) {
	scope := NewScope(owner)
	for _, r := range reserved {
		if err := scope.Claim(r, r+" (method)"); err != nil {
			return nil, err
		}
	}

	props := make([]Property, 0, len(values))
	for _, v := range values {
		ident := Ident{Name: p.namer.Member(v.Name), Wire: v.Name}
		if err := scope.Claim(ident.Name, v.Name); err != nil {
			return nil, err
		}
		use, err := p.use(v.Type, owner, v.Name)
		if err != nil {
			return nil, err
		}
		props = append(props, Property{
			Ident:       ident,
			Description: v.Description,
			Type:        use,
			Default:     v.DefaultValue,
		})
	}
	return props, nil
}

func (p *Planner) planEnum(t *schema.Type) (*EnumConstruct, error) {
	c := &EnumConstruct{
		Name:        Ident{Name: p.namer.Type(t.Name), Wire: t.Name},
		Description: t.Description,
	}
	scope := NewScope(t.Name)
	for _, v := range t.EnumValues {
		ident := Ident{Name: p.namer.EnumCase(c.Name.Name, v.Name), Wire: v.Name}
		if err := scope.Claim(ident.Name, v.Name); err != nil {
			return nil, err
		}
		c.Cases = append(c.Cases, EnumCase{
			Ident:       ident,
			Description: v.Description,
			Deprecated:  v.IsDeprecated,
			Reason:      v.DeprecationReason,
		})
	}
	return c, nil
}

func (p *Planner) planInput(t *schema.Type) (*InputConstruct, error) {
	props, err := p.planInputValues(t.Name, t.InputFields, "MarshalJSON")
	if err != nil {
		return nil, err
	}
	return &InputConstruct{
		Name:        Ident{Name: p.namer.Type(t.Name), Wire: t.Name},
		Description: t.Description,
		Properties:  props,
	}, nil
}

func (p *Planner) planUnion(t *schema.Type) (*UnionConstruct, []Warning, error) {
	c := &UnionConstruct{
		Name:        Ident{Name: p.namer.Type(t.Name), Wire: t.Name},
		Description: t.Description,
	}
	c.Carrier = Ident{Name: p.namer.Carrier(c.Name.Name), Wire: t.Name}
	if t.PossibleTypes == nil {
		c.Degraded = true
		return c, []Warning{{
			Kind:    DegradedUnion,
			Subject: t.Name,
			Message: "possible types unknown, members must be asserted manually",
		}}, nil
	}
	for _, ref := range t.PossibleTypes {
		member, ok := p.index.Lookup(ref.Name)
		if !ok {
			return nil, nil, &schema.UnresolvedTypeError{Name: ref.Name, Referrer: t.Name}
		}
		if member.Kind != schema.KindObject {
			return nil, nil, schema.NewMalformedSchemaError(t.Name, "", fmt.Sprintf("union member %s is %s, not OBJECT", member.Name, member.Kind))
		}
		c.Members = append(c.Members, Ident{Name: p.namer.Type(member.Name), Wire: member.Name})
	}
	if err := claimCarrier(c.Carrier, c.Members); err != nil {
		return nil, nil, err
	}
	return c, nil, nil
}

// claimCarrier checks the member fields of a carrier against its own
// Typename field and Value method.
func claimCarrier(carrier Ident, members []Ident) error {
	scope := NewScope(carrier.Name)
	for _, reserved := range []string{"Typename", "Value"} {
		if err := scope.Claim(reserved, reserved+" (carrier)"); err != nil {
			return err
		}
	}
	for _, m := range members {
		if err := scope.Claim(m.Name, m.Wire); err != nil {
			return err
		}
	}
	return nil
}

// PlanContext plans the client entry point for the schema's root operation types.
func (p *Planner) PlanContext(contextName, endpoint string) *ContextPlan {
	ident := p.namer.Context(contextName)
	c := &ContextPlan{
		Name:          Ident{Name: ident, Wire: contextName},
		Constructor:   "New" + ident,
		EndpointConst: "Default" + ident + "Endpoint",
		Endpoint:      endpoint,
	}

	s := p.index.Schema()
	roots := []struct {
		kind OperationKind
		ref  *schema.NamedRef
	}{
		{OperationQuery, s.QueryType},
		{OperationMutation, s.MutationType},
		{OperationSubscription, s.SubscriptionType},
	}
	for _, r := range roots {
		if r.ref == nil || r.ref.Name == "" {
			continue
		}
		c.Operations = append(c.Operations, Operation{
			Kind: r.kind,
			Root: Ident{Name: p.namer.Type(r.ref.Name), Wire: r.ref.Name},
		})
	}
	return c
}

func (p *Planner) use(ref *schema.TypeRef, owner, member string) (TypeUse, error) {
	ct, err := p.resolver.Resolve(ref)
	if err != nil {
		return TypeUse{}, withReferrer(err, owner, member)
	}
	u := TypeUse{CanonicalType: ct, GraphQL: ref.String()}
	switch {
	case ct.BaseKind == schema.KindScalar:
		u.Go = p.resolver.Scalar(ct.BaseName)
	case ct.BaseKind == schema.KindInterface || ct.BaseKind == schema.KindUnion:
		u.Go = GoRef{Name: p.namer.Type(ct.BaseName)}
		u.Carrier = p.namer.Carrier(u.Go.Name)
	case ct.BaseKind.Known():
		u.Go = GoRef{Name: p.namer.Type(ct.BaseName)}
	default:
		u.Go = fallbackScalar
	}
	return u, nil
}

// CheckNames claims every package-level identifier of the plan and reports
// all collisions.
func CheckNames(plan *Plan) error {
	scope := NewScope("package")
	var merr *multierror.Error
	claim := func(ident, wire string) {
		if err := scope.Claim(ident, wire); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	for _, c := range plan.Constructs {
		id := c.Ident()
		claim(id.Name, id.Wire)
		switch c := c.(type) {
		case *ObjectConstruct:
			for _, m := range c.Methods {
				claim(m.ArgsType.Name, m.ArgsType.Wire+" (arguments)")
			}
		case *InterfaceConstruct:
			claim(c.Carrier.Name, c.Carrier.Wire+" (carrier)")
			for _, m := range c.Methods {
				claim(m.ArgsType.Name, m.ArgsType.Wire+" (arguments)")
			}
		case *UnionConstruct:
			claim(c.Carrier.Name, c.Carrier.Wire+" (carrier)")
		case *EnumConstruct:
			for _, v := range c.Cases {
				claim(v.Name, id.Wire+"."+v.Wire)
			}
		}
	}
	if ctx := plan.Context; ctx != nil {
		claim(ctx.Name.Name, ctx.Name.Wire+" (context)")
		claim(ctx.Constructor, ctx.Name.Wire+" (constructor)")
		claim(ctx.EndpointConst, ctx.Name.Wire+" (endpoint)")
	}
	for _, name := range RuntimeNames {
		claim(name, name+" (runtime)")
	}
	return merr.ErrorOrNil()
}

func withReferrer(err error, owner, member string) error {
	var ue *schema.UnresolvedTypeError
	if errors.As(err, &ue) && ue.Referrer == "" {
		ue.Referrer = owner + "." + member
		return err
	}
	var me *schema.MalformedSchemaError
	if errors.As(err, &me) && me.Type == "" {
		me.Type, me.Field = owner, member
	}
	return err
}

func fieldByName(t *schema.Type, name string) *schema.Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func propertyByWire(props []Property, wire string) (Property, bool) {
	for _, p := range props {
		if p.Wire == wire {
			return p, true
		}
	}
	return Property{}, false
}
