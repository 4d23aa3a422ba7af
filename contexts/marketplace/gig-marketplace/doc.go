// Package gigmarketplace contains the gig-to-payment lifecycle of the
// talentia marketplace: gigs, applications, conversations, contracts,
// escrow payments, payouts and release reviews.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package gigmarketplace
