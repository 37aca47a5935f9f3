package pipeline

import (
	"testing"

	"github.com/dashmover/dashmover/models"
	"github.com/stretchr/testify/assert"
)

func hits(uids ...string) []models.SearchHit {
	out := make([]models.SearchHit, 0, len(uids))
	for _, uid := range uids {
		out = append(out, models.SearchHit{UID: uid, Title: "dash " + uid, Type: models.SearchTypeDashboard})
	}
	return out
}

func TestFilter_EmptyAllowListIsIdentity(t *testing.T) {
	in := hits("A", "B", "C")

	kept, dropped := Filter(in, nil)
	assert.Equal(t, in, kept)
	assert.Empty(t, dropped)

	kept, dropped = Filter(in, []string{})
	assert.Equal(t, in, kept)
	assert.Empty(t, dropped)
}

func TestFilter_SubsetPreservesInputOrder(t *testing.T) {
	in := hits("A", "B", "C")

	kept, dropped := Filter(in, []string{"C", "A"}) // allow-list order must not matter
	assert.Equal(t, hits("A", "C"), kept)
	assert.Equal(t, hits("B"), dropped)
}

func TestFilter_NoMatchesDropsEverything(t *testing.T) {
	in := hits("A", "B")

	kept, dropped := Filter(in, []string{"Z"})
	assert.Empty(t, kept)
	assert.Equal(t, in, dropped)
}

func TestFilter_NilInput(t *testing.T) {
	kept, dropped := Filter(nil, []string{"A"})
	assert.Empty(t, kept)
	assert.Empty(t, dropped)
}

func TestUnmatched(t *testing.T) {
	in := hits("A", "B")

	assert.Nil(t, Unmatched(in, nil))
	assert.Nil(t, Unmatched(in, []string{"A", "B"}))
	assert.Equal(t, []string{"Z", "Y"}, Unmatched(in, []string{"Z", "A", "Y"}))
}
