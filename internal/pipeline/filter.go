package pipeline

import "github.com/dashmover/dashmover/models"

// Filter restricts hits to the uids in allowList, preserving input order.
// An empty or nil allowList is the identity. Returns the kept hits and the
// dropped hits.
//
// Allow-list uids that match no hit are not an error; use [Unmatched] to
// surface them as warnings.
func Filter(hits []models.SearchHit, allowList []string) (kept, dropped []models.SearchHit) {
	if len(allowList) == 0 {
		return hits, nil
	}

	allowed := make(map[string]struct{}, len(allowList))
	for _, uid := range allowList {
		allowed[uid] = struct{}{}
	}

	for _, hit := range hits {
		if _, ok := allowed[hit.UID]; ok {
			kept = append(kept, hit)
		} else {
			dropped = append(dropped, hit)
		}
	}
	return kept, dropped
}

// Unmatched returns the allow-list uids that matched none of the hits, in
// allow-list order.
func Unmatched(hits []models.SearchHit, allowList []string) []string {
	if len(allowList) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(hits))
	for _, hit := range hits {
		seen[hit.UID] = struct{}{}
	}

	var unmatched []string
	for _, uid := range allowList {
		if _, ok := seen[uid]; !ok {
			unmatched = append(unmatched, uid)
		}
	}
	return unmatched
}
