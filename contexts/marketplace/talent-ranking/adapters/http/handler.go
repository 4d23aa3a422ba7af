package httpadapter

import (
	"context"
	"log/slog"

	application "talentia/contexts/marketplace/talent-ranking/application"
	"talentia/contexts/marketplace/talent-ranking/application/queries"
	httptransport "talentia/contexts/marketplace/talent-ranking/transport/http"
)

type Handler struct {
	ListTalents queries.ListTalentsUseCase
	Logger      *slog.Logger
}

// ListTalentsHandler godoc
// @Summary List ranked talents
// @Description Returns reviewed students ranked by average rating, recomputed on every request.
// @Tags talent-ranking
// @Produce json
// @Param limit query int false "Maximum entries (1-100)"
// @Success 200 {object} httptransport.ListTalentsResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /talents [get]
func (h Handler) ListTalentsHandler(ctx context.Context, req httptransport.ListTalentsRequest) (httptransport.ListTalentsResponse, error) {
	result, err := h.ListTalents.Execute(ctx, queries.ListTalentsQuery{Limit: req.Limit})
	if err != nil {
		application.ResolveLogger(h.Logger).Error("list talents request failed",
			"event", "http_list_talents_failed",
			"module", "marketplace/talent-ranking",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.ListTalentsResponse{}, err
	}

	items := make([]httptransport.TalentDTO, 0, len(result.Items))
	for _, talent := range result.Items {
		items = append(items, httptransport.TalentDTO{
			UserID:        talent.UserID,
			Name:          talent.Name,
			Skill:         talent.PrimarySkill,
			University:    talent.University,
			Rating:        talent.Rating,
			Reviews:       talent.Reviews,
			CompletedGigs: talent.CompletedGigs,
			HourlyRate:    talent.HourlyRate,
			AvatarURL:     talent.AvatarURL,
			Skills:        talent.Skills,
		})
	}
	return httptransport.ListTalentsResponse{Items: items}, nil
}
