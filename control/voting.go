package control

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync/atomic"

	"Rozi/db"
	"Rozi/model"
	"Rozi/notify"
)

// ProposalStore 投票引擎需要的仓库能力
type ProposalStore interface {
	Communities() []model.Community
	Proposals() []model.Proposal
	Proposal(id int) (model.Proposal, error)
	UpdateProposal(id int, fn func(p *model.Proposal) error) (model.Proposal, error)
	CastVoteOnce(id int, userID string, fn func(p *model.Proposal) error) (model.Proposal, bool, error)
}

// VotingEngine 提案投票
type VotingEngine struct {
	store      ProposalStore
	sink       notify.Sink
	singleVote atomic.Bool
}

// NewVotingEngine singleVote 为 true 时每人每个提案只能投一次
func NewVotingEngine(store ProposalStore, sink notify.Sink, singleVote bool) *VotingEngine {
	e := &VotingEngine{store: store, sink: sink}
	e.singleVote.Store(singleVote)
	return e
}

// SetSingleVote 配置热更新时调用
func (e *VotingEngine) SetSingleVote(on bool) { e.singleVote.Store(on) }

// CastVote 给提案投票，票数加上提案的 UserVotingPower。
// 提案不存在返回 ErrNotFound，重复投票返回 ErrAlreadyVoted，两种情况票数都不变。
func (e *VotingEngine) CastVote(ctx context.Context, voter string, proposalID int, choice model.Choice) (model.Proposal, error) {
	p, err := e.castVote(voter, proposalID, choice)
	if err != nil {
		n := notify.New(model.KindVoteFailed, "Vote Failed", err.Error())
		n.UserID = voter
		n.SubjectID = proposalID
		e.emit(ctx, n)
		return p, err
	}

	n := notify.New(model.KindVoteRecorded, "Vote Recorded",
		fmt.Sprintf("You voted %s with %d votes (%d $ROZI)", choice, p.UserVotingPower, p.UserVotingPower))
	n.UserID = voter
	n.SubjectID = p.ID
	n.Choice = choice.String()
	n.VotingPower = p.UserVotingPower
	e.emit(ctx, n)
	return p, nil
}

func (e *VotingEngine) castVote(voter string, proposalID int, choice model.Choice) (model.Proposal, error) {
	if choice != model.ChoiceYes && choice != model.ChoiceNo {
		return model.Proposal{}, invalid("choice", "must be yes or no")
	}
	apply := func(p *model.Proposal) error {
		if choice == model.ChoiceYes {
			p.YesVotes += p.UserVotingPower
		} else {
			p.NoVotes += p.UserVotingPower
		}
		return nil
	}

	if !e.singleVote.Load() {
		p, err := e.store.UpdateProposal(proposalID, apply)
		return p, notFound(err)
	}
	p, voted, err := e.store.CastVoteOnce(proposalID, voter, apply)
	if err != nil {
		return p, notFound(err)
	}
	if !voted {
		return p, fmt.Errorf("proposal %d: %w", proposalID, ErrAlreadyVoted)
	}
	return p, nil
}

func (e *VotingEngine) Proposal(id int) (model.Proposal, error) {
	p, err := e.store.Proposal(id)
	return p, notFound(err)
}

func (e *VotingEngine) Proposals() []model.Proposal { return e.store.Proposals() }

func (e *VotingEngine) Communities() []model.Community { return e.store.Communities() }

// FilterByCommunity 按社区过滤，保持原顺序。每次调用都对当前快照重新过滤
func (e *VotingEngine) FilterByCommunity(communityID string) iter.Seq[model.Proposal] {
	return func(yield func(model.Proposal) bool) {
		for _, p := range e.store.Proposals() {
			if p.CommunityID != communityID {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// PercentageYes 赞成票百分比，没人投票时为 0
func PercentageYes(p model.Proposal) int {
	return Percent(p.YesVotes, p.YesVotes+p.NoVotes)
}

// PercentageNo 与 PercentageYes 互补，两者之和恒为 100
func PercentageNo(p model.Proposal) int {
	return 100 - PercentageYes(p)
}

func (e *VotingEngine) emit(ctx context.Context, n model.Notification) {
	if e.sink != nil {
		e.sink.Notify(ctx, n)
	}
}

func notFound(err error) error {
	if errors.Is(err, db.ErrNoRecord) {
		return fmt.Errorf("%v: %w", err, ErrNotFound)
	}
	return err
}
