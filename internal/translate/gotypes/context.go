// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"github.com/dave/jennifer/jen"

	"github.com/dacolabs/gqlscaffold/internal/translate"
)

// genContext emits the client entry point with one family of methods per
// root operation type.
func genContext(f *jen.File, c *translate.ContextPlan) {
	name := c.Name.Name
	hasSubscriptions := c.Has(translate.OperationSubscription)

	f.Commentf("%s is the endpoint the client was generated from.", c.EndpointConst)
	f.Const().Id(c.EndpointConst).Op("=").Lit(c.Endpoint)
	f.Line()

	f.Commentf("%s runs operations against the GraphQL service.", name)
	f.Comment("//")
	f.Comment("Root operation types:")
	for _, op := range c.Operations {
		f.Commentf("  - %s: %s", op.Kind, op.Root.Wire)
	}
	f.Type().Id(name).StructFunc(func(g *jen.Group) {
		g.Id("endpoint").String()
		g.Id("client").Op("*").Qual(clientPkg, "Client")
		if hasSubscriptions {
			g.Id("subscriptions").Op("*").Qual(clientPkg, "SubscriptionClient")
		}
	})
	f.Line()

	f.Commentf("%s creates a client for endpoint, or %s when endpoint is empty.", c.Constructor, c.EndpointConst)
	f.Comment("A non-empty token is sent as a bearer credential.")
	f.Func().Id(c.Constructor).Params(jen.List(jen.Id("endpoint"), jen.Id("token")).String()).Op("*").Id(name).BlockFunc(func(g *jen.Group) {
		g.If(jen.Id("endpoint").Op("==").Lit("")).Block(
			jen.Id("endpoint").Op("=").Id(c.EndpointConst),
		)
		g.Id("client").Op(":=").Qual(clientPkg, "NewClient").Call(jen.Id("endpoint"), jen.Nil())
		if hasSubscriptions {
			g.Id("subscriptions").Op(":=").Qual(clientPkg, "NewSubscriptionClient").Call(jen.Id("endpoint"))
		}
		g.If(jen.Id("token").Op("!=").Lit("")).BlockFunc(func(g *jen.Group) {
			g.Id("client").Op("=").Id("client").Dot("WithRequestModifier").Call(
				jen.Func().Params(jen.Id("r").Op("*").Qual("net/http", "Request")).Block(
					jen.Id("r").Dot("Header").Dot("Set").Call(jen.Lit("Authorization"), jen.Lit("Bearer ").Op("+").Id("token")),
				),
			)
			if hasSubscriptions {
				g.Id("subscriptions").Op("=").Id("subscriptions").Dot("WithConnectionParams").Call(
					jen.Map(jen.String()).Any().Values(jen.Dict{
						jen.Lit("headers"): jen.Map(jen.String()).String().Values(jen.Dict{
							jen.Lit("Authorization"): jen.Lit("Bearer ").Op("+").Id("token"),
						}),
					}),
				)
			}
		})
		fields := jen.Dict{
			jen.Id("endpoint"): jen.Id("endpoint"),
			jen.Id("client"):   jen.Id("client"),
		}
		if hasSubscriptions {
			fields[jen.Id("subscriptions")] = jen.Id("subscriptions")
		}
		g.Return(jen.Op("&").Id(name).Values(fields))
	})
	f.Line()

	f.Comment("Endpoint returns the endpoint the client sends operations to.")
	f.Func().Params(jen.Id("c").Op("*").Id(name)).Id("Endpoint").Params().String().Block(
		jen.Return(jen.Id("c").Dot("endpoint")),
	)
	f.Line()

	for _, op := range c.Operations {
		switch op.Kind {
		case translate.OperationQuery:
			genExecFamily(f, name, "Query", "query", op.Root.Wire)
		case translate.OperationMutation:
			genExecFamily(f, name, "Mutate", "mutation", op.Root.Wire)
		case translate.OperationSubscription:
			genSubscriptionFamily(f, name, op.Root.Wire)
		}
	}
}

// genExecFamily emits <method> and <method>Raw, forwarding to the client.
func genExecFamily(f *jen.File, ctxName, method, kind, root string) {
	f.Commentf("%s executes a %s on %s built from v, a pointer to a struct with graphql tags,", method, kind, root)
	f.Comment("and decodes the response into v.")
	f.Func().Params(jen.Id("c").Op("*").Id(ctxName)).Id(method).Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("v").Any(),
		jen.Id("variables").Map(jen.String()).Any(),
	).Error().Block(
		jen.Return(jen.Id("c").Dot("client").Dot(method).Call(jen.Id("ctx"), jen.Id("v"), jen.Id("variables"))),
	)
	f.Line()

	raw := method + "Raw"
	f.Commentf("%s is like %s but returns the raw data payload.", raw, method)
	f.Func().Params(jen.Id("c").Op("*").Id(ctxName)).Id(raw).Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("v").Any(),
		jen.Id("variables").Map(jen.String()).Any(),
	).Params(jen.Index().Byte(), jen.Error()).Block(
		jen.Return(jen.Id("c").Dot("client").Dot(raw).Call(jen.Id("ctx"), jen.Id("v"), jen.Id("variables"))),
	)
	f.Line()
}

func genSubscriptionFamily(f *jen.File, ctxName, root string) {
	recv := jen.Id("c").Op("*").Id(ctxName)

	f.Commentf("Subscribe registers a subscription on %s built from v. The handler receives", root)
	f.Comment("each message payload; returning an error from it stops the subscription.")
	f.Comment("Messages flow once RunSubscriptions is called.")
	f.Func().Params(recv.Clone()).Id("Subscribe").Params(
		jen.Id("v").Any(),
		jen.Id("variables").Map(jen.String()).Any(),
		jen.Id("handler").Func().Params(jen.Id("message").Index().Byte(), jen.Id("err").Error()).Error(),
	).Params(jen.String(), jen.Error()).Block(
		jen.Return(jen.Id("c").Dot("subscriptions").Dot("Subscribe").Call(jen.Id("v"), jen.Id("variables"), jen.Id("handler"))),
	)
	f.Line()

	f.Comment("RunSubscriptions connects and dispatches subscription messages until closed.")
	f.Func().Params(recv.Clone()).Id("RunSubscriptions").Params().Error().Block(
		jen.Return(jen.Id("c").Dot("subscriptions").Dot("Run").Call()),
	)
	f.Line()

	f.Comment("CloseSubscriptions stops every subscription and closes the connection.")
	f.Func().Params(recv.Clone()).Id("CloseSubscriptions").Params().Error().Block(
		jen.Return(jen.Id("c").Dot("subscriptions").Dot("Close").Call()),
	)
	f.Line()
}
