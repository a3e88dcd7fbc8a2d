// Package scoringengine implements the gamification scoring engine inside the
// community-experience context.
//
// The module owns per-(user, pool) statistics: points and derived levels, task
// counters, completion streaks, and one-time achievement unlocks. The request
// service drives it through record operations on each lifecycle transition and
// reads ranked pool leaderboards back. Business rules stay in the application
// and domain layers; storage and caching live behind ports and adapters.
package scoringengine
