package client

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aksoydev/tamirstore-api/models"
)

// MoveCampaignProductUp swaps the target entry's order with its predecessor
// in the campaign list. MoveCampaignProductDown does the same with the
// successor. Both issue the two order updates in parallel and do not roll
// back when only one succeeds, so a partial failure can leave two entries
// sharing an order value until the next full reload.
func (c *Client) MoveCampaignProductUp(ctx context.Context, campaignID, productID uint) error {
	return c.moveCampaignProduct(ctx, campaignID, productID, -1)
}

func (c *Client) MoveCampaignProductDown(ctx context.Context, campaignID, productID uint) error {
	return c.moveCampaignProduct(ctx, campaignID, productID, +1)
}

var ErrEdgeOfList = errors.New("campaign product already at edge of list")

func (c *Client) moveCampaignProduct(ctx context.Context, campaignID, productID uint, dir int) error {
	entries, err := c.CampaignProducts(ctx, campaignID)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Order < entries[j].Order })

	idx := -1
	for i, e := range entries {
		if e.ProductID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errors.New("product not in campaign")
	}
	other := idx + dir
	if other < 0 || other >= len(entries) {
		return ErrEdgeOfList
	}

	target, neighbor := entries[idx], entries[other]
	return c.swapOrders(ctx, campaignID, target, neighbor)
}

// swapOrders fires both updates at once and joins them.
func (c *Client) swapOrders(ctx context.Context, campaignID uint, a, b models.CampaignProduct) error {
	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = c.SetCampaignProductOrder(ctx, campaignID, a.ProductID, b.Order)
	}()
	go func() {
		defer wg.Done()
		errs[1] = c.SetCampaignProductOrder(ctx, campaignID, b.ProductID, a.Order)
	}()
	wg.Wait()

	return errors.Join(errs[0], errs[1])
}
