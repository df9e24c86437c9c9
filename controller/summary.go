package controller

import (
	"context"
	"strconv"

	"kitchenops/dateutil"
	"kitchenops/entity"
	"kitchenops/repository"
	"kitchenops/service"
	"kitchenops/util"
)

type SummaryController interface {
	ListGrouped(ctx context.Context, from, to string) ([]entity.SummaryGroup, error)
	ExportCSV(ctx context.Context, from, to string) (string, error)
}

type summaryController struct {
	summaryRepository repository.SummaryRepository
}

func NewSummaryController(summaryRepository *repository.SummaryRepository) SummaryController {
	return &summaryController{
		summaryRepository: *summaryRepository,
	}
}

// ListGrouped fetches the aggregated requirement rows in range and groups
// them by order date, newest first. Rows within a group keep the store's
// ingredient ordering.
func (c *summaryController) ListGrouped(ctx context.Context, from, to string) ([]entity.SummaryGroup, error) {
	rows, err := c.summaryRepository.ListSummaryByRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	keys, byDate := service.GroupByDate(rows, func(r entity.SummaryRow) string { return r.OrderDate })
	groups := make([]entity.SummaryGroup, 0, len(keys))
	for _, date := range keys {
		heading, err := dateutil.Heading(date)
		if err != nil {
			heading = date
		}
		groups = append(groups, entity.SummaryGroup{
			Date:    date,
			Heading: heading,
			Items:   byDate[date],
		})
	}
	return groups, nil
}

// ExportCSV serializes the summary rows in range. Quantities keep three
// decimals, matching the on-screen rendering.
func (c *summaryController) ExportCSV(ctx context.Context, from, to string) (string, error) {
	rows, err := c.summaryRepository.ListSummaryByRange(ctx, from, to)
	if err != nil {
		return "", err
	}

	out := [][]string{{"Date", "Day", "Ingredient", "Total Quantity", "Unit"}}
	for _, r := range rows {
		out = append(out, []string{
			r.OrderDate,
			r.DayName,
			r.Ingredient,
			strconv.FormatFloat(r.TotalQuantity, 'f', 3, 64),
			r.Unit,
		})
	}
	return util.MarshalCSV(out), nil
}
