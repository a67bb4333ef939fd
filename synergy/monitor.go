package synergy

import "github.com/poiesic/loadsmith/core"

// MatchMonitor provides hooks to observe the match process.
// Implement this interface to track each stage of archetype matching.
type MatchMonitor interface {
	Start(parsed core.ParsedQuery)
	ArchetypeConsidered(id string)
	ArchetypeBelowThreshold(id string, matched, min int)
	ArchetypeScored(id string, score, matched int)
	Finish(matches []core.CandidateMatch)
}

// noopMonitor is a no-op implementation of MatchMonitor
type noopMonitor struct{}

var _ MatchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.ParsedQuery)                 {}
func (n *noopMonitor) ArchetypeConsidered(_ string)             {}
func (n *noopMonitor) ArchetypeBelowThreshold(_ string, _, _ int) {}
func (n *noopMonitor) ArchetypeScored(_ string, _, _ int)       {}
func (n *noopMonitor) Finish(_ []core.CandidateMatch)           {}
