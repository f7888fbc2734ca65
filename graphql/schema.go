package graphql

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"Rozi/chain"
	"Rozi/control"
	"Rozi/db"
	"Rozi/identity"
	"Rozi/model"
	"Rozi/notify"
	"github.com/graphql-go/graphql"
)

// BalanceLookup 链上余额查询，未配置节点时为 nil
type BalanceLookup interface {
	BalanceOf(ctx context.Context, address string) (chain.Balance, error)
}

// Deps schema 需要的全部依赖，由 main 组装注入
type Deps struct {
	Store         *db.Store
	Voting        *control.VotingEngine
	Lending       *control.LendingEngine
	Activity      *control.ActivityGenerator
	Identity      identity.Provider
	Notifications *notify.Recorder
	Balance       BalanceLookup
	RequireLogin  func() bool
	Now           func() time.Time
}

type resolver struct{ Deps }

// NewGraphQLSchema 创建新的GraphQL schema
// 查询和变更都挂在同一个 resolver 上
func NewGraphQLSchema(d Deps) (graphql.Schema, error) {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.RequireLogin == nil {
		d.RequireLogin = func() bool { return false }
	}
	r := &resolver{Deps: d}
	return graphql.NewSchema(
		graphql.SchemaConfig{
			Query:    r.queryType(),
			Mutation: r.mutationType(),
		},
	)
}

func (r *resolver) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"communities": &graphql.Field{
				Type: graphql.NewList(communityType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Voting.Communities(), nil
				},
			},
			"proposals": &graphql.Field{
				Type: graphql.NewList(proposalType),
				Args: graphql.FieldConfigArgument{
					"communityId": &graphql.ArgumentConfig{Type: graphql.String}, // 为空返回全部
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if id, _ := p.Args["communityId"].(string); id != "" {
						return slices.Collect(r.Voting.FilterByCommunity(id)), nil
					}
					return r.Voting.Proposals(), nil
				},
			},
			"proposal": &graphql.Field{
				Type: proposalType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					proposal, err := r.Voting.Proposal(id)
					if err != nil {
						return nil, err
					}
					return proposal, nil
				},
			},
			"lendingRequests": &graphql.Field{
				Type: graphql.NewList(lendingRequestType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Lending.LendingRequests(), nil
				},
			},
			"lendingRequest": &graphql.Field{
				Type: lendingRequestType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					req, err := r.Lending.LendingRequest(id)
					if err != nil {
						return nil, err
					}
					return req, nil
				},
			},
			"rewardPreview": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"amount": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					amount, _ := p.Args["amount"].(int)
					return control.PreviewReward(amount), nil
				},
			},
			"gigs": &graphql.Field{
				Type: graphql.NewList(gigType),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
					"minPay":   &graphql.ArgumentConfig{Type: graphql.Int},
					"type":     &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveGigs,
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(categoryType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return control.GigCategories(r.Store.Gigs()), nil
				},
			},
			"activity": &graphql.Field{
				Type: monthActivityType,
				Args: graphql.FieldConfigArgument{
					"year":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"month": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					year, _ := p.Args["year"].(int)
					month, _ := p.Args["month"].(int)
					if month < 1 || month > 12 {
						return nil, &control.ValidationError{Field: "month", Reason: "must be between 1 and 12"}
					}
					m := r.Activity.Month(year, time.Month(month))
					first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
					return monthView{MonthActivity: m, CanAdvance: control.CanAdvance(first, r.Now())}, nil
				},
			},
			"profile": &graphql.Field{
				Type: profileType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Store.Profile(), nil
				},
			},
			"benefits": &graphql.Field{
				Type: graphql.NewList(benefitType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Store.Benefits(), nil
				},
			},
			"importSources": &graphql.Field{
				Type: graphql.NewList(importSourceType),
				Args: graphql.FieldConfigArgument{
					"imported": &graphql.ArgumentConfig{Type: graphql.Boolean}, // 为空返回全部
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					srcs := r.Store.ImportSources()
					if want, ok := p.Args["imported"].(bool); ok {
						srcs = slices.DeleteFunc(srcs, func(s model.ImportSource) bool { return s.IsImported != want })
					}
					return srcs, nil
				},
			},
			"transactions": &graphql.Field{
				Type: graphql.NewList(transactionType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Store.Transactions(), nil
				},
			},
			"session": &graphql.Field{
				Type: sessionType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Identity.Session(p.Context), nil
				},
			},
			"notifications": &graphql.Field{
				Type: graphql.NewList(notificationType),
				Args: graphql.FieldConfigArgument{
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 20},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if r.Notifications == nil {
						return []model.Notification{}, nil
					}
					limit, _ := p.Args["limit"].(int)
					voter := identity.VoterID(r.Identity.Session(p.Context))
					return r.Notifications.RecentFor(voter, limit), nil
				},
			},
			"balance": &graphql.Field{
				Type: balanceType,
				Args: graphql.FieldConfigArgument{
					"address": &graphql.ArgumentConfig{Type: graphql.String}, // 为空时查当前登录用户
				},
				Resolve: r.resolveBalance,
			},
		},
	})
}

func (r *resolver) mutationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"castVote": &graphql.Field{
				Type: proposalType,
				Args: graphql.FieldConfigArgument{
					"proposalId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"choice":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)}, // yes / no
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["proposalId"].(int)
					raw, _ := p.Args["choice"].(string)
					choice, err := model.ParseChoice(raw)
					if err != nil {
						return nil, &control.ValidationError{Field: "choice", Reason: err.Error()}
					}
					session := r.Identity.Session(p.Context)
					if r.RequireLogin() && !session.IsLoggedIn {
						return nil, control.ErrUnauthenticated
					}
					proposal, err := r.Voting.CastVote(p.Context, identity.VoterID(session), id, choice)
					if err != nil {
						return nil, err
					}
					return proposal, nil
				},
			},
			"allocate": &graphql.Field{
				Type: allocationType,
				Args: graphql.FieldConfigArgument{
					"requestId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"amount":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["requestId"].(int)
					amount, _ := p.Args["amount"].(int)
					lender := identity.VoterID(r.Identity.Session(p.Context))
					a, err := r.Lending.Allocate(p.Context, lender, id, amount)
					if err != nil {
						return nil, err
					}
					return a, nil
				},
			},
			"submitBorrowRequest": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"title":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"amount":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"deadline": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)}, // yyyy-mm-dd
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					title, _ := p.Args["title"].(string)
					amount, _ := p.Args["amount"].(int)
					raw, _ := p.Args["deadline"].(string)
					deadline, err := time.Parse(time.DateOnly, raw)
					if err != nil {
						return false, &control.ValidationError{Field: "deadline", Reason: "must be yyyy-mm-dd", Err: err}
					}
					borrower := identity.VoterID(r.Identity.Session(p.Context))
					req := model.BorrowRequest{Title: title, Amount: amount, Deadline: deadline}
					if err := r.Lending.SubmitBorrowRequest(p.Context, borrower, req); err != nil {
						return false, err
					}
					return true, nil
				},
			},
			"login": &graphql.Field{
				Type: loginType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					s, token, err := r.Identity.Login(p.Context)
					if err != nil {
						return nil, err
					}
					return loginPayload{Session: s, Token: token}, nil
				},
			},
			"logout": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := r.Identity.Logout(p.Context); err != nil {
						return false, err
					}
					return true, nil
				},
			},
		},
	})
}

func (r *resolver) resolveGigs(p graphql.ResolveParams) (interface{}, error) {
	var f control.GigFilter
	if raw, _ := p.Args["category"].(string); raw != "" && raw != "all" {
		c := model.ParseCategory(raw)
		f.Category = &c
	}
	f.MinPay, _ = p.Args["minPay"].(int)
	raw, _ := p.Args["type"].(string)
	t, err := control.ParseGigType(raw)
	if err != nil {
		return nil, err
	}
	f.Type = t
	return control.FilterGigs(r.Store.Gigs(), f), nil
}

func (r *resolver) resolveBalance(p graphql.ResolveParams) (interface{}, error) {
	if r.Balance == nil {
		return nil, chain.ErrNotConfigured
	}
	addr, _ := p.Args["address"].(string)
	if addr == "" {
		s := r.Identity.Session(p.Context)
		if !s.IsLoggedIn || s.User == nil {
			return nil, control.ErrUnauthenticated
		}
		addr = s.User.Address
	}
	b, err := r.Balance.BalanceOf(p.Context, addr)
	if err != nil {
		if errors.Is(err, chain.ErrInvalidAddress) {
			return nil, &control.ValidationError{Field: "address", Reason: "not a hex address", Err: err}
		}
		return nil, fmt.Errorf("balance lookup: %w", err)
	}
	return b, nil
}
