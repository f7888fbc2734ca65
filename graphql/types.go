package graphql

import (
	"Rozi/chain"
	"Rozi/control"
	"Rozi/model"
	"github.com/graphql-go/graphql"
)

// 社区类型
var communityType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Community",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.String},
			"name":    &graphql.Field{Type: graphql.String},
			"members": &graphql.Field{Type: graphql.Int},
			"icon":    &graphql.Field{Type: graphql.String},
		},
	},
)

// 提案类型，percentageYes / percentageNo 由票数实时计算
var proposalType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Proposal",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.Int},
			"title":           &graphql.Field{Type: graphql.String},
			"description":     &graphql.Field{Type: graphql.String},
			"communityId":     &graphql.Field{Type: graphql.String},
			"yesVotes":        &graphql.Field{Type: graphql.Int},
			"noVotes":         &graphql.Field{Type: graphql.Int},
			"deadline":        &graphql.Field{Type: graphql.DateTime},
			"userVotingPower": &graphql.Field{Type: graphql.Int},
			"percentageYes": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return control.PercentageYes(p.Source.(model.Proposal)), nil
				},
			},
			"percentageNo": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return control.PercentageNo(p.Source.(model.Proposal)), nil
				},
			},
		},
	},
)

var lendingRequestType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "LendingRequest",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.Int},
			"title":      &graphql.Field{Type: graphql.String},
			"amount":     &graphql.Field{Type: graphql.Int},
			"fulfilled":  &graphql.Field{Type: graphql.Int},
			"deadline":   &graphql.Field{Type: graphql.DateTime},
			"requester":  &graphql.Field{Type: graphql.String},
			"trustScore": &graphql.Field{Type: graphql.Int},
			"remaining": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return control.Remaining(p.Source.(model.LendingRequest)), nil
				},
			},
			"percentFunded": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return control.PercentFunded(p.Source.(model.LendingRequest)), nil
				},
			},
		},
	},
)

// 出借结果
var allocationType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Allocation",
		Fields: graphql.Fields{
			"request": &graphql.Field{
				Type: lendingRequestType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(control.Allocation).Request, nil
				},
			},
			"reward": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(control.Allocation).Reward, nil
				},
			},
		},
	},
)

var categoryType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(model.Category).String(), nil
				},
			},
			"emoji": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(model.Category).Emoji(), nil
				},
			},
			"color": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(model.Category).Color(), nil
				},
			},
		},
	},
)

var gigType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Gig",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.Int},
			"title": &graphql.Field{Type: graphql.String},
			"category": &graphql.Field{
				Type: categoryType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(model.Gig).Category, nil
				},
			},
			"pay":         &graphql.Field{Type: graphql.Int},
			"roziCoins":   &graphql.Field{Type: graphql.Int},
			"duration":    &graphql.Field{Type: graphql.String},
			"location":    &graphql.Field{Type: graphql.String},
			"isRecurring": &graphql.Field{Type: graphql.Boolean},
		},
	},
)

var dailyActivityType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "DailyActivity",
		Fields: graphql.Fields{
			"date":     &graphql.Field{Type: graphql.String},
			"gigs":     &graphql.Field{Type: graphql.Int},
			"earnings": &graphql.Field{Type: graphql.Int},
			"level": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return control.ActivityLevel(p.Source.(model.DailyActivity).Gigs), nil
				},
			},
		},
	},
)

// monthView 日历视图，附带能否翻到下个月
type monthView struct {
	model.MonthActivity
	CanAdvance bool
}

var monthActivityType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "MonthActivity",
		Fields: graphql.Fields{
			"year": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(monthView).Year, nil
				},
			},
			"month": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(p.Source.(monthView).Month), nil
				},
			},
			"totalGigs": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(monthView).TotalGigs, nil
				},
			},
			"totalEarnings": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(monthView).TotalEarnings, nil
				},
			},
			"days": &graphql.Field{
				Type: graphql.NewList(dailyActivityType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(monthView).Days, nil
				},
			},
			"canAdvance": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(monthView).CanAdvance, nil
				},
			},
		},
	},
)

var profileType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Profile",
		Fields: graphql.Fields{
			"role":          &graphql.Field{Type: graphql.String},
			"rating":        &graphql.Field{Type: graphql.Float},
			"platformScore": &graphql.Field{Type: graphql.Int},
			"roziCoins":     &graphql.Field{Type: graphql.Int},
			"totalGigs":     &graphql.Field{Type: graphql.Int},
			"totalEarnings": &graphql.Field{Type: graphql.Int},
		},
	},
)

var milestoneType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Milestone",
		Fields: graphql.Fields{
			"icon":            &graphql.Field{Type: graphql.String},
			"title":           &graphql.Field{Type: graphql.String},
			"isUnlocked":      &graphql.Field{Type: graphql.Boolean},
			"unlockCondition": &graphql.Field{Type: graphql.String},
			"amount":          &graphql.Field{Type: graphql.String},
		},
	},
)

var benefitType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Benefit",
		Fields: graphql.Fields{
			"title":      &graphql.Field{Type: graphql.String},
			"emoji":      &graphql.Field{Type: graphql.String},
			"milestones": &graphql.Field{Type: graphql.NewList(milestoneType)},
			"unlocked": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(model.Benefit).Unlocked(), nil
				},
			},
		},
	},
)

var importSourceType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "ImportSource",
		Fields: graphql.Fields{
			"name":       &graphql.Field{Type: graphql.String},
			"logo":       &graphql.Field{Type: graphql.String},
			"isImported": &graphql.Field{Type: graphql.Boolean},
		},
	},
)

var transactionType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Transaction",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: graphql.String},
			"type": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(p.Source.(model.Transaction).Type), nil
				},
			},
			"amount":       &graphql.Field{Type: graphql.Int},
			"currency":     &graphql.Field{Type: graphql.String},
			"counterparty": &graphql.Field{Type: graphql.String},
			"gig":          &graphql.Field{Type: graphql.String},
			"date":         &graphql.Field{Type: graphql.DateTime},
		},
	},
)

var userType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.String},
			"address":     &graphql.Field{Type: graphql.String},
			"displayName": &graphql.Field{Type: graphql.String},
			"shortAddress": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return control.ShortenAddress(p.Source.(*model.User).Address), nil
				},
			},
		},
	},
)

var sessionType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Session",
		Fields: graphql.Fields{
			"isLoggedIn": &graphql.Field{Type: graphql.Boolean},
			"user": &graphql.Field{
				Type: userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if u := p.Source.(model.Session).User; u != nil {
						return u, nil
					}
					return nil, nil
				},
			},
		},
	},
)

// loginPayload 登录结果
type loginPayload struct {
	Session model.Session
	Token   string
}

var loginType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "LoginPayload",
		Fields: graphql.Fields{
			"session": &graphql.Field{
				Type: sessionType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(loginPayload).Session, nil
				},
			},
			"token": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(loginPayload).Token, nil
				},
			},
		},
	},
)

var notificationType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Notification",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(model.Notification).EventID, nil
				},
			},
			"kind": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(p.Source.(model.Notification).Kind), nil
				},
			},
			"title":       &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"choice":      &graphql.Field{Type: graphql.String},
			"votingPower": &graphql.Field{Type: graphql.Int},
			"amount":      &graphql.Field{Type: graphql.Int},
			"reward":      &graphql.Field{Type: graphql.Int},
			"occurredAt":  &graphql.Field{Type: graphql.DateTime},
		},
	},
)

var balanceType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Balance",
		Fields: graphql.Fields{
			"address": &graphql.Field{Type: graphql.String},
			"symbol":  &graphql.Field{Type: graphql.String},
			"amount": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(chain.Balance).Amount.String(), nil
				},
			},
			"display": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(chain.Balance).String(), nil
				},
			},
		},
	},
)
