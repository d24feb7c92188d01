package crimeapi

import (
	"context"
	"net/http"
	"strconv"
)

// ---------- Police stations ----------

// ListStations fetches all police stations.
func (c *Client) ListStations(ctx context.Context) ([]Station, error) {
	var stations []Station
	if err := c.do(ctx, http.MethodGet, "/api/police-stations", nil, nil, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// CreateStation creates a police station.
func (c *Client) CreateStation(ctx context.Context, req StationRequest) (*Station, error) {
	var station Station
	if err := c.do(ctx, http.MethodPost, "/api/police-stations", nil, req, &station); err != nil {
		return nil, err
	}
	return &station, nil
}

// UpdateStation updates a police station.
func (c *Client) UpdateStation(ctx context.Context, id int64, req StationRequest) (*Station, error) {
	var station Station
	if err := c.do(ctx, http.MethodPut, "/api/police-stations/"+strconv.FormatInt(id, 10), nil, req, &station); err != nil {
		return nil, err
	}
	return &station, nil
}

// DeleteStation deletes a police station. The backend rejects the delete
// while officers are still attached.
func (c *Client) DeleteStation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/police-stations/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// ---------- Authorities (officers and admins) ----------

// ListAuthorities fetches all authority accounts.
func (c *Client) ListAuthorities(ctx context.Context) ([]Authority, error) {
	var authorities []Authority
	if err := c.do(ctx, http.MethodGet, "/api/authority", nil, nil, &authorities); err != nil {
		return nil, err
	}
	return authorities, nil
}

// CreateAuthority creates an authority account.
func (c *Client) CreateAuthority(ctx context.Context, req AuthorityRequest) (*Authority, error) {
	var authority Authority
	if err := c.do(ctx, http.MethodPost, "/api/authority", nil, req, &authority); err != nil {
		return nil, err
	}
	return &authority, nil
}

// UpdateAuthority updates an authority account.
func (c *Client) UpdateAuthority(ctx context.Context, id int64, req AuthorityRequest) (*Authority, error) {
	var authority Authority
	if err := c.do(ctx, http.MethodPut, "/api/authority/"+strconv.FormatInt(id, 10), nil, req, &authority); err != nil {
		return nil, err
	}
	return &authority, nil
}

// DeleteAuthority deletes an authority account.
func (c *Client) DeleteAuthority(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/authority/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// ---------- Crime types ----------

// ListCrimeTypes fetches all crime types.
func (c *Client) ListCrimeTypes(ctx context.Context) ([]CrimeType, error) {
	var crimes []CrimeType
	if err := c.do(ctx, http.MethodGet, "/api/crimes", nil, nil, &crimes); err != nil {
		return nil, err
	}
	return crimes, nil
}

// CreateCrimeType creates a crime type.
func (c *Client) CreateCrimeType(ctx context.Context, req CrimeTypeRequest) (*CrimeType, error) {
	var crime CrimeType
	if err := c.do(ctx, http.MethodPost, "/api/crimes", nil, req, &crime); err != nil {
		return nil, err
	}
	return &crime, nil
}

// UpdateCrimeType updates a crime type.
func (c *Client) UpdateCrimeType(ctx context.Context, id int64, req CrimeTypeRequest) (*CrimeType, error) {
	var crime CrimeType
	if err := c.do(ctx, http.MethodPut, "/api/crimes/"+strconv.FormatInt(id, 10), nil, req, &crime); err != nil {
		return nil, err
	}
	return &crime, nil
}

// DeleteCrimeType deletes a crime type.
func (c *Client) DeleteCrimeType(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/crimes/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// ---------- Crime categories ----------

// ListCrimeCategories fetches all crime categories.
func (c *Client) ListCrimeCategories(ctx context.Context) ([]CrimeCategory, error) {
	var categories []CrimeCategory
	if err := c.do(ctx, http.MethodGet, "/api/crime-categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCrimeCategory creates a crime category.
func (c *Client) CreateCrimeCategory(ctx context.Context, req CrimeCategoryRequest) (*CrimeCategory, error) {
	var category CrimeCategory
	if err := c.do(ctx, http.MethodPost, "/api/crime-categories", nil, req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCrimeCategory updates a crime category.
func (c *Client) UpdateCrimeCategory(ctx context.Context, id int64, req CrimeCategoryRequest) (*CrimeCategory, error) {
	var category CrimeCategory
	if err := c.do(ctx, http.MethodPut, "/api/crime-categories/"+strconv.FormatInt(id, 10), nil, req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCrimeCategory deletes a crime category. The backend rejects the
// delete while crime types still reference it.
func (c *Client) DeleteCrimeCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/crime-categories/"+strconv.FormatInt(id, 10), nil, nil, nil)
}
