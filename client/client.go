package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aksoydev/tamirstore-api/models"
)

// Client exposes typed calls over a Session.
type Client struct {
	session *Session
}

func New(session *Session) *Client {
	return &Client{session: session}
}

// Session returns the underlying session, e.g. to install an OnAuthFailure
// hook.
func (c *Client) Session() *Session {
	return c.session
}

// Login obtains a bearer token and stores it on the session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.session.do(ctx, http.MethodPost, "/api/admin/login", body, &resp); err != nil {
		return err
	}
	c.session.SetToken(resp.Token)
	return nil
}

// ---- Products ----

func (c *Client) Products(ctx context.Context, search, sortBy string) ([]models.Product, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if sortBy != "" {
		query.Set("sortBy", sortBy)
	}
	path := "/api/products"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var products []models.Product
	if err := c.session.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := c.session.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) ProductImages(ctx context.Context, id uint) ([]models.ProductImage, error) {
	var images []models.ProductImage
	if err := c.session.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d/images", id), nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}

// ---- Categories ----

// CategoryChildren fetches the direct children of a node; a nil parent
// selects the root level.
func (c *Client) CategoryChildren(ctx context.Context, parentID *uint) ([]models.Category, error) {
	parent := "null"
	if parentID != nil {
		parent = fmt.Sprintf("%d", *parentID)
	}
	var children []models.Category
	path := "/api/admin/categories/parent/" + parent
	if err := c.session.do(ctx, http.MethodGet, path, nil, &children); err != nil {
		return nil, err
	}
	return children, nil
}

// ---- Repair tickets ----

func (c *Client) RepairRequests(ctx context.Context, status string) ([]models.RepairRequest, error) {
	path := "/api/admin/repair-requests"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var tickets []models.RepairRequest
	if err := c.session.do(ctx, http.MethodGet, path, nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (c *Client) UpdateRepairStatus(ctx context.Context, id uint, status models.RepairStatus) (*models.RepairRequest, error) {
	var ticket models.RepairRequest
	body := map[string]string{"status": string(status)}
	path := fmt.Sprintf("/api/admin/repair-requests/%d/update-status", id)
	if err := c.session.do(ctx, http.MethodPut, path, body, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ---- Campaigns ----

func (c *Client) CampaignProducts(ctx context.Context, campaignID uint) ([]models.CampaignProduct, error) {
	var rows []models.CampaignProduct
	path := fmt.Sprintf("/api/admin/campaigns/%d/products", campaignID)
	if err := c.session.do(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// SetCampaignProductOrder updates the position of a single campaign row.
func (c *Client) SetCampaignProductOrder(ctx context.Context, campaignID, productID uint, order int) error {
	body := map[string]int{"order": order}
	path := fmt.Sprintf("/api/admin/campaigns/%d/products/%d/order", campaignID, productID)
	return c.session.do(ctx, http.MethodPut, path, body, nil)
}
