package db

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"Rozi/catalog"
	"Rozi/model"
)

// ErrNoRecord 指定 ID 不存在
var ErrNoRecord = errors.New("record not found")

// Store 进程内的数据仓库，由调用方创建并注入引擎。
// 所有读取都返回副本，修改只能走 Update* 方法。
type Store struct {
	mu          sync.Mutex
	communities []model.Community
	proposals   []model.Proposal
	requests    []model.LendingRequest
	gigs        []model.Gig
	txs         []model.Transaction
	profile     model.Profile
	benefits    []model.Benefit
	imports     []model.ImportSource
	voters      map[int]map[string]struct{} // proposalID -> userID
}

// NewStore 用种子数据构建仓库，种子之后不再被引用
func NewStore(seed catalog.Seed) *Store {
	return &Store{
		communities: slices.Clone(seed.Communities),
		proposals:   slices.Clone(seed.Proposals),
		requests:    slices.Clone(seed.LendingRequests),
		gigs:        slices.Clone(seed.Gigs),
		txs:         slices.Clone(seed.Transactions),
		profile:     seed.Profile,
		benefits:    cloneBenefits(seed.Benefits),
		imports:     slices.Clone(seed.ImportSources),
		voters:      make(map[int]map[string]struct{}),
	}
}

func (s *Store) Communities() []model.Community {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.communities)
}

func (s *Store) Proposals() []model.Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.proposals)
}

func (s *Store) Proposal(id int) (model.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.proposalIndex(id)
	if i < 0 {
		return model.Proposal{}, fmt.Errorf("proposal %d: %w", id, ErrNoRecord)
	}
	return s.proposals[i], nil
}

// UpdateProposal 在副本上执行 fn，fn 返回 nil 才提交
func (s *Store) UpdateProposal(id int, fn func(p *model.Proposal) error) (model.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.proposalIndex(id)
	if i < 0 {
		return model.Proposal{}, fmt.Errorf("proposal %d: %w", id, ErrNoRecord)
	}
	p := s.proposals[i]
	if err := fn(&p); err != nil {
		return s.proposals[i], err
	}
	s.proposals[i] = p
	return p, nil
}

// CastVoteOnce 原子地检查投票人并修改提案。
// 已投过返回 voted=false，提案不变。
func (s *Store) CastVoteOnce(id int, userID string, fn func(p *model.Proposal) error) (p model.Proposal, voted bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.proposalIndex(id)
	if i < 0 {
		return model.Proposal{}, false, fmt.Errorf("proposal %d: %w", id, ErrNoRecord)
	}
	if _, ok := s.voters[id][userID]; ok {
		return s.proposals[i], false, nil
	}
	p = s.proposals[i]
	if err := fn(&p); err != nil {
		return s.proposals[i], false, err
	}
	s.proposals[i] = p
	if s.voters[id] == nil {
		s.voters[id] = make(map[string]struct{})
	}
	s.voters[id][userID] = struct{}{}
	return p, true, nil
}

// HasVoted 用户是否已对提案投过票
func (s *Store) HasVoted(id int, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.voters[id][userID]
	return ok
}

func (s *Store) LendingRequests() []model.LendingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

func (s *Store) LendingRequest(id int) (model.LendingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.requestIndex(id)
	if i < 0 {
		return model.LendingRequest{}, fmt.Errorf("lending request %d: %w", id, ErrNoRecord)
	}
	return s.requests[i], nil
}

// UpdateLendingRequest 同 UpdateProposal
func (s *Store) UpdateLendingRequest(id int, fn func(r *model.LendingRequest) error) (model.LendingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.requestIndex(id)
	if i < 0 {
		return model.LendingRequest{}, fmt.Errorf("lending request %d: %w", id, ErrNoRecord)
	}
	r := s.requests[i]
	if err := fn(&r); err != nil {
		return s.requests[i], err
	}
	s.requests[i] = r
	return r, nil
}

func (s *Store) Gigs() []model.Gig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.gigs)
}

func (s *Store) Transactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.txs)
}

func (s *Store) Profile() model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Benefits 连同每档里程碑一起深拷贝
func (s *Store) Benefits() []model.Benefit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneBenefits(s.benefits)
}

func (s *Store) ImportSources() []model.ImportSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.imports)
}

func cloneBenefits(in []model.Benefit) []model.Benefit {
	out := slices.Clone(in)
	for i := range out {
		out[i].Milestones = slices.Clone(out[i].Milestones)
	}
	return out
}

func (s *Store) proposalIndex(id int) int {
	return slices.IndexFunc(s.proposals, func(p model.Proposal) bool { return p.ID == id })
}

func (s *Store) requestIndex(id int) int {
	return slices.IndexFunc(s.requests, func(r model.LendingRequest) bool { return r.ID == id })
}
