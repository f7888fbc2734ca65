package db

import (
	"errors"
	"sync"
	"testing"

	"Rozi/catalog"
	"Rozi/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreReadsAreCopies(t *testing.T) {
	s := NewStore(catalog.Load())

	ps := s.Proposals()
	ps[0].YesVotes = -1

	p, err := s.Proposal(1)
	require.NoError(t, err)
	assert.Equal(t, 1500, p.YesVotes)
}

func TestBenefitReadsAreDeepCopies(t *testing.T) {
	s := NewStore(catalog.Load())

	bs := s.Benefits()
	bs[0].Milestones[2].IsUnlocked = true
	bs[1].Title = "changed"
	srcs := s.ImportSources()
	srcs[3].IsImported = true

	again := s.Benefits()
	assert.False(t, again[0].Milestones[2].IsUnlocked)
	assert.Equal(t, "Loans", again[1].Title)
	assert.False(t, s.ImportSources()[3].IsImported)
}

func TestUpdateProposalCommitsOnlyOnSuccess(t *testing.T) {
	s := NewStore(catalog.Load())

	_, err := s.UpdateProposal(1, func(p *model.Proposal) error {
		p.YesVotes = 0
		return errors.New("boom")
	})
	assert.Error(t, err)
	p, _ := s.Proposal(1)
	assert.Equal(t, 1500, p.YesVotes)

	p, err = s.UpdateProposal(1, func(p *model.Proposal) error {
		p.NoVotes += 10
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 510, p.NoVotes)
}

func TestUnknownIDs(t *testing.T) {
	s := NewStore(catalog.Load())

	_, err := s.Proposal(999)
	assert.ErrorIs(t, err, ErrNoRecord)
	_, err = s.LendingRequest(999)
	assert.ErrorIs(t, err, ErrNoRecord)
	_, err = s.UpdateLendingRequest(999, func(*model.LendingRequest) error { return nil })
	assert.ErrorIs(t, err, ErrNoRecord)
	_, _, err = s.CastVoteOnce(999, "u", func(*model.Proposal) error { return nil })
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestCastVoteOnce(t *testing.T) {
	s := NewStore(catalog.Load())
	add := func(p *model.Proposal) error {
		p.YesVotes += p.UserVotingPower
		return nil
	}

	p, voted, err := s.CastVoteOnce(1, "alice", add)
	require.NoError(t, err)
	assert.True(t, voted)
	assert.Equal(t, 1600, p.YesVotes)
	assert.True(t, s.HasVoted(1, "alice"))

	p, voted, err = s.CastVoteOnce(1, "alice", add)
	require.NoError(t, err)
	assert.False(t, voted)
	assert.Equal(t, 1600, p.YesVotes)

	_, voted, _ = s.CastVoteOnce(1, "bob", add)
	assert.True(t, voted)
	assert.False(t, s.HasVoted(2, "alice"))
}

// 并发修改不会丢更新
func TestConcurrentUpdates(t *testing.T) {
	s := NewStore(catalog.Load())
	n := 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.UpdateProposal(2, func(p *model.Proposal) error {
				p.NoVotes++
				return nil
			})
		}()
	}
	wg.Wait()

	p, _ := s.Proposal(2)
	assert.Equal(t, 800+n, p.NoVotes)
}
