package control

import (
	"context"
	"slices"
	"testing"

	"Rozi/catalog"
	"Rozi/db"
	"Rozi/model"
	"Rozi/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVoting(t *testing.T, singleVote bool) (*VotingEngine, *notify.Recorder) {
	t.Helper()
	rec := notify.NewRecorder(0)
	return NewVotingEngine(db.NewStore(catalog.Load()), rec, singleVote), rec
}

func TestCastVoteScenario(t *testing.T) {
	e, rec := newVoting(t, true)

	p, err := e.CastVote(context.Background(), "alice", 1, model.ChoiceYes)
	require.NoError(t, err)
	assert.Equal(t, 1600, p.YesVotes)
	assert.Equal(t, 500, p.NoVotes)
	assert.Equal(t, 76, PercentageYes(p))
	assert.Equal(t, 24, PercentageNo(p))

	stored, err := e.Proposal(1)
	require.NoError(t, err)
	assert.Equal(t, p, stored)

	events := rec.Recent(1)
	require.Len(t, events, 1)
	assert.Equal(t, model.KindVoteRecorded, events[0].Kind)
	assert.Equal(t, "yes", events[0].Choice)
	assert.Equal(t, 100, events[0].VotingPower)
	assert.Equal(t, "alice", events[0].UserID)
}

func TestCastVoteNo(t *testing.T) {
	e, _ := newVoting(t, true)

	p, err := e.CastVote(context.Background(), "alice", 2, model.ChoiceNo)
	require.NoError(t, err)
	assert.Equal(t, 2000, p.YesVotes)
	assert.Equal(t, 950, p.NoVotes)
}

func TestCastVoteUnknownProposal(t *testing.T) {
	e, rec := newVoting(t, true)

	_, err := e.CastVote(context.Background(), "alice", 42, model.ChoiceYes)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, model.KindVoteFailed, rec.Recent(1)[0].Kind)
	assert.Equal(t, catalog.Proposals(), e.Proposals())
}

func TestCastVoteInvalidChoice(t *testing.T) {
	e, _ := newVoting(t, true)

	_, err := e.CastVote(context.Background(), "alice", 1, model.Choice(9))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, catalog.Proposals(), e.Proposals())
}

func TestSingleVotePerUser(t *testing.T) {
	e, _ := newVoting(t, true)
	ctx := context.Background()

	_, err := e.CastVote(ctx, "alice", 1, model.ChoiceYes)
	require.NoError(t, err)

	p, err := e.CastVote(ctx, "alice", 1, model.ChoiceNo)
	assert.ErrorIs(t, err, ErrAlreadyVoted)
	assert.Equal(t, 1600, p.YesVotes)
	assert.Equal(t, 500, p.NoVotes)

	// 其他用户、其他提案不受影响
	_, err = e.CastVote(ctx, "bob", 1, model.ChoiceNo)
	assert.NoError(t, err)
	_, err = e.CastVote(ctx, "alice", 4, model.ChoiceNo)
	assert.NoError(t, err)
}

func TestRepeatVotingWhenSingleVoteOff(t *testing.T) {
	e, _ := newVoting(t, false)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := e.CastVote(ctx, "alice", 1, model.ChoiceYes)
		require.NoError(t, err)
	}
	p, _ := e.Proposal(1)
	assert.Equal(t, 1800, p.YesVotes)

	e.SetSingleVote(true)
	_, err := e.CastVote(ctx, "alice", 1, model.ChoiceYes)
	require.NoError(t, err, "votes cast before the switch are not recorded in the ledger")
	_, err = e.CastVote(ctx, "alice", 1, model.ChoiceYes)
	assert.ErrorIs(t, err, ErrAlreadyVoted)
}

func TestTallyInvariants(t *testing.T) {
	e, _ := newVoting(t, false)
	ctx := context.Background()
	choices := []model.Choice{model.ChoiceYes, model.ChoiceNo, model.ChoiceNo, model.ChoiceYes, model.ChoiceYes}

	for _, p := range e.Proposals() {
		for _, c := range choices {
			_, err := e.CastVote(ctx, "alice", p.ID, c)
			require.NoError(t, err)
		}
	}
	for _, p := range e.Proposals() {
		assert.GreaterOrEqual(t, p.YesVotes, 0)
		assert.GreaterOrEqual(t, p.NoVotes, 0)
		assert.Equal(t, 100, PercentageYes(p)+PercentageNo(p))
	}
}

func TestPercentageEmptyTally(t *testing.T) {
	p := model.Proposal{}
	assert.Equal(t, 0, PercentageYes(p))
	assert.Equal(t, 100, PercentageNo(p))

	p.NoVotes = 10
	assert.Equal(t, 0, PercentageYes(p))
	assert.Equal(t, 100, PercentageNo(p))
}

func TestFilterByCommunity(t *testing.T) {
	e, _ := newVoting(t, true)

	seq := e.FilterByCommunity("urban")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.Len(t, first, 3)
	assert.Equal(t, first, second)

	var ids []int
	for p := range e.FilterByCommunity("urban") {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{1, 4, 8}, ids)

	assert.Empty(t, slices.Collect(e.FilterByCommunity("nobody")))

	// 提前退出
	for p := range e.FilterByCommunity("handymen") {
		assert.Equal(t, 2, p.ID)
		break
	}
}

func TestFilterReflectsVotes(t *testing.T) {
	e, _ := newVoting(t, true)
	seq := e.FilterByCommunity("plumbers")

	_, err := e.CastVote(context.Background(), "alice", 3, model.ChoiceYes)
	require.NoError(t, err)

	got := slices.Collect(seq)
	require.Len(t, got, 2)
	assert.Equal(t, 1880, got[0].YesVotes)
}
