// Package deck supplies the dashboard's mock operational data: agents,
// ledgers, spaces, a chat transcript and rolling metric series. The
// graph explorer consumes the same entities through Graph.
package deck

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Agent is a worker presented on the agents panel
type Agent struct {
	ID     string
	Name   string
	Status string
	Load   float64
	Space  string
}

// LedgerEntry is one row of the ledgers table
type LedgerEntry struct {
	ID      string
	Account string
	Memo    string
	Delta   float64
	Balance float64
	At      time.Time
}

// Space is a collaboration area presented on the spaces panel
type Space struct {
	ID       string
	Name     string
	Members  int
	Activity float64
}

// Message is one chat bubble
type Message struct {
	From    string
	Body    string
	At      time.Time
	Inbound bool
}

var (
	agentNames = []string{
		"atlas", "borealis", "cinder", "drift", "ember",
		"fathom", "garnet", "halcyon", "isobar", "juniper",
	}
	agentStatuses = []string{"online", "online", "online", "busy", "draining", "offline"}
	spaceNames    = []string{"control-room", "staging", "forge", "archive", "perimeter"}
	accounts      = []string{"ops/compute", "ops/storage", "ops/egress", "research", "reserve"}
	memos         = []string{"replication credit", "burst window", "quota rebalance", "audit hold", "settlement"}
	chatAuthors   = []string{"halcyon", "operator", "drift", "operator", "atlas"}
	chatLines     = []string{
		"perimeter sweep finished, nothing flagged",
		"rebalancing ledger ops/compute, expect a dip",
		"space forge is at 92% activity",
		"ack. holding the burst window open",
		"handing off to the night rotation",
	}
)

// Generator produces deterministic mock data from a seed
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator creates a generator; the same seed yields the same data
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now(),
	}
}

// Spaces generates n mock spaces
func (g *Generator) Spaces(n int) []Space {
	spaces := make([]Space, n)
	for i := range spaces {
		spaces[i] = Space{
			ID:       uuid.NewString(),
			Name:     spaceNames[i%len(spaceNames)],
			Members:  2 + g.rng.Intn(14),
			Activity: g.rng.Float64(),
		}
	}
	return spaces
}

// Agents generates n mock agents assigned round-robin to the spaces
func (g *Generator) Agents(n int, spaces []Space) []Agent {
	agents := make([]Agent, n)
	for i := range agents {
		a := Agent{
			ID:     uuid.NewString(),
			Name:   agentNames[i%len(agentNames)],
			Status: agentStatuses[g.rng.Intn(len(agentStatuses))],
			Load:   g.rng.Float64(),
		}
		if i >= len(agentNames) {
			a.Name = fmt.Sprintf("%s-%d", a.Name, i/len(agentNames)+1)
		}
		if len(spaces) > 0 {
			a.Space = spaces[i%len(spaces)].ID
		}
		agents[i] = a
	}
	return agents
}

// Ledgers generates n ledger entries with a running balance
func (g *Generator) Ledgers(n int) []LedgerEntry {
	entries := make([]LedgerEntry, n)
	balance := 10000.0
	for i := range entries {
		delta := (g.rng.Float64() - 0.45) * 500
		balance += delta
		entries[i] = LedgerEntry{
			ID:      uuid.NewString(),
			Account: accounts[g.rng.Intn(len(accounts))],
			Memo:    memos[g.rng.Intn(len(memos))],
			Delta:   delta,
			Balance: balance,
			At:      g.now.Add(-time.Duration(n-i) * time.Minute),
		}
	}
	return entries
}

// Transcript generates n chat messages, alternating direction
func (g *Generator) Transcript(n int) []Message {
	msgs := make([]Message, n)
	for i := range msgs {
		msgs[i] = Message{
			From:    chatAuthors[i%len(chatAuthors)],
			Body:    chatLines[i%len(chatLines)],
			At:      g.now.Add(-time.Duration(n-i) * 2 * time.Minute),
			Inbound: i%2 == 0,
		}
	}
	return msgs
}

// Series generates a rolling metric series for the charts tab
func (g *Generator) Series(n int, base, volatility float64) []float64 {
	series := make([]float64, n)
	value := base
	for i := range series {
		value += (g.rng.Float64() - 0.5) * volatility
		if value < 0 {
			value = 0
		}
		series[i] = value
	}
	return series
}
