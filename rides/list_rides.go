package rides

import (
	"context"

	"encore.dev/rlog"

	"encore.app/rides/model"
)

type ListRidesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type ListRidesResponse struct {
	Rides      []model.Ride `json:"rides"`
	TotalCount int64        `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

//encore:api public path=/v1/rides method=GET
func (s *Service) ListRides(ctx context.Context, req *ListRidesRequest) (*ListRidesResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	rides, totalCount, err := s.rides.ListRides(ctx, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list rides", "error", err)
		return nil, err
	}

	response := &ListRidesResponse{
		Rides:      make([]model.Ride, len(rides)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}

	for i, r := range rides {
		response.Rides[i] = *r
	}

	return response, nil
}
