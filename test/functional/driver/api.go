package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) CreateDocument(ownerID, title string, pdf []byte) (*http.Response, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "document.pdf")
	if err != nil {
		panic(err)
	}
	if _, err := part.Write(pdf); err != nil {
		panic(err)
	}
	if err := writer.WriteField("title", title); err != nil {
		panic(err)
	}
	if err := writer.Close(); err != nil {
		panic(err)
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/v1/documents", d.baseURL), &body)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-User-ID", ownerID)
	return d.client.Do(req)
}

func (d *APIDriver) GetDocument(ownerID, id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/v1/documents/%s", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	req.Header.Set("X-User-ID", ownerID)
	return d.client.Do(req)
}

func (d *APIDriver) ListDocuments(ownerID string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/v1/documents", d.baseURL), nil)
	if err != nil {
		panic(err)
	}
	req.Header.Set("X-User-ID", ownerID)
	return d.client.Do(req)
}

func (d *APIDriver) DeleteDocument(ownerID, id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/documents/%s", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	req.Header.Set("X-User-ID", ownerID)
	return d.client.Do(req)
}

func (d *APIDriver) FinalizeDocument(ownerID, id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/v1/documents/%s/finalize", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	req.Header.Set("X-User-ID", ownerID)
	return d.client.Do(req)
}

func (d *APIDriver) DownloadDocument(ownerID, id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/v1/documents/%s/download", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	req.Header.Set("X-User-ID", ownerID)
	return d.client.Do(req)
}

func (d *APIDriver) AddSigner(documentID, name, email string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{"name": name, "email": email})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/documents/%s/signers", d.baseURL, documentID), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) ListSigners(documentID string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/documents/%s/signers", d.baseURL, documentID))
}

func (d *APIDriver) RemoveSigner(documentID, signerID string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/documents/%s/signers/%s", d.baseURL, documentID, signerID), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) CreateField(documentID, fieldType string, page int, signerID string, x, y, width, height float64) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"field_type":  fieldType,
		"page_number": page,
		"signer_id":   signerID,
		"x_position":  x,
		"y_position":  y,
		"width":       width,
		"height":      height,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/documents/%s/fields", d.baseURL, documentID), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) ListFields(documentID string, page int) (*http.Response, error) {
	url := fmt.Sprintf("%s/v1/documents/%s/fields", d.baseURL, documentID)
	if page > 0 {
		url = fmt.Sprintf("%s?page=%d", url, page)
	}
	return d.client.Get(url)
}

func (d *APIDriver) UpdateFieldPosition(documentID, fieldID string, x, y, width, height float64) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"x_position": x,
		"y_position": y,
		"width":      width,
		"height":     height,
	})
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPatch, fmt.Sprintf("%s/v1/documents/%s/fields/%s/position", d.baseURL, documentID, fieldID), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) DeleteField(documentID, fieldID string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/documents/%s/fields/%s", d.baseURL, documentID, fieldID), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) CompleteField(documentID, fieldID, signerID, value string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{"signer_id": signerID, "value": value})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/documents/%s/fields/%s/complete", d.baseURL, documentID, fieldID), "application/json", bytes.NewBuffer(reqBody))
}
