package service

import "fitfeed/internal/models"

// CanView reports whether the viewer may see a workout. Owners always
// see their own workouts regardless of visibility; PUBLIC is visible to
// every viewer; FOLLOWERS requires a viewer who follows the owner;
// PRIVATE is owner-only. Routes are session-gated, so a zero viewerID
// never reaches this in normal operation; it is treated as a stranger.
//
// Callers that deny access on a single fetch must respond with the same
// not-found error used for absent rows, so private workouts do not leak
// their existence.
func CanView(w *models.Workout, viewerID uint, isFollower bool) bool {
	if viewerID != 0 && viewerID == w.UserID {
		return true
	}
	switch w.Visibility {
	case models.VisibilityPublic:
		return true
	case models.VisibilityFollowers:
		return viewerID != 0 && isFollower
	default:
		return false
	}
}
