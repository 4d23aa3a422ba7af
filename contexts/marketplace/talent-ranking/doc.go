// Package talentranking serves the public talent feed: students ranked by the
// ratings companies left when releasing their gig contracts.
package talentranking
