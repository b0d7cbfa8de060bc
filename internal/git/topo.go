package git

import (
	"container/heap"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// enumerateCommits collects every commit reachable from head and returns them
// in canonical order: a parent is always emitted no later than any of its
// children, ties broken by committer time then hash. The order is a pure
// function of the commit graph, so repeated runs over an unchanged repository
// enumerate identically.
func enumerateCommits(head *object.Commit) ([]*object.Commit, error) {
	commits := make(map[plumbing.Hash]*object.Commit)

	iter := object.NewCommitPreorderIter(head, nil, nil)
	err := iter.ForEach(func(c *object.Commit) error {
		commits[c.Hash] = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	// pending[h] counts parents of h not yet emitted. The reachable set is
	// closed under parents, so every parent hash resolves within it.
	pending := make(map[plumbing.Hash]int, len(commits))
	children := make(map[plumbing.Hash][]plumbing.Hash, len(commits))
	for h, c := range commits {
		pending[h] = len(c.ParentHashes)
		for _, p := range c.ParentHashes {
			children[p] = append(children[p], h)
		}
	}

	ready := &commitQueue{}
	for h, n := range pending {
		if n == 0 {
			*ready = append(*ready, commits[h])
		}
	}
	heap.Init(ready)

	ordered := make([]*object.Commit, 0, len(commits))
	for ready.Len() > 0 {
		c := heap.Pop(ready).(*object.Commit)
		ordered = append(ordered, c)

		for _, ch := range children[c.Hash] {
			pending[ch]--
			if pending[ch] == 0 {
				heap.Push(ready, commits[ch])
			}
		}
	}

	return ordered, nil
}

// commitQueue is a min-heap of commits ordered by committer time, then hash.
type commitQueue []*object.Commit

func (q commitQueue) Len() int { return len(q) }

func (q commitQueue) Less(i, j int) bool {
	ti, tj := q[i].Committer.When, q[j].Committer.When
	if !ti.Equal(tj) {
		return ti.Before(tj)
	}
	return q[i].Hash.String() < q[j].Hash.String()
}

func (q commitQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *commitQueue) Push(x any) { *q = append(*q, x.(*object.Commit)) }

func (q *commitQueue) Pop() any {
	old := *q
	n := len(old)
	c := old[n-1]
	*q = old[:n-1]
	return c
}
