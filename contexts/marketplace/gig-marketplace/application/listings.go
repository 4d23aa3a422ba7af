package application

import (
	"context"

	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	"talentia/contexts/marketplace/gig-marketplace/ports"
)

// BuildGigListings resolves the real company name and applicant count for
// each gig. A company without a directory profile is labelled by its id.
func BuildGigListings(
	ctx context.Context,
	gigs ports.GigRepository,
	directory ports.UserDirectory,
	items []entities.Gig,
) ([]entities.GigListing, error) {
	if len(items) == 0 {
		return []entities.GigListing{}, nil
	}

	gigIDs := make([]string, 0, len(items))
	companyIDs := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, gig := range items {
		gigIDs = append(gigIDs, gig.GigID)
		if _, ok := seen[gig.CompanyID]; !ok {
			seen[gig.CompanyID] = struct{}{}
			companyIDs = append(companyIDs, gig.CompanyID)
		}
	}

	names, err := ResolveDisplayNames(ctx, directory, companyIDs)
	if err != nil {
		return nil, err
	}
	counts, err := gigs.CountApplicationsByGig(ctx, gigIDs)
	if err != nil {
		return nil, err
	}

	listings := make([]entities.GigListing, 0, len(items))
	for _, gig := range items {
		listings = append(listings, entities.GigListing{
			Gig:         gig,
			CompanyName: names[gig.CompanyID],
			Applicants:  counts[gig.GigID],
		})
	}
	return listings, nil
}

// ResolveDisplayNames returns a name for every requested id, falling back to
// the id itself when the directory has no profile.
func ResolveDisplayNames(ctx context.Context, directory ports.UserDirectory, userIDs []string) (map[string]string, error) {
	resolved := make(map[string]string, len(userIDs))
	var known map[string]string
	if directory != nil && len(userIDs) > 0 {
		var err error
		known, err = directory.DisplayNames(ctx, userIDs)
		if err != nil {
			return nil, err
		}
	}
	for _, userID := range userIDs {
		if name, ok := known[userID]; ok && name != "" {
			resolved[userID] = name
			continue
		}
		resolved[userID] = userID
	}
	return resolved, nil
}
