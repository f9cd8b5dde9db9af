package api

import (
	"net/url"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/shared/models"
)

func contactPath(id string) string {
	return "/api/contacts/" + url.PathEscape(id)
}

// ListContacts возвращает все контакты пользователя.
func (c *Client) ListContacts(accessToken string) ([]models.Contact, error) {
	var resp []models.Contact
	err := c.GetJSON("/api/contacts", &resp, accessToken)
	return resp, err
}

// GetContact возвращает контакт по id.
func (c *Client) GetContact(accessToken, id string) (models.Contact, error) {
	var resp models.Contact
	err := c.GetJSON(contactPath(id), &resp, accessToken)
	return resp, err
}

// CreateContact создаёт контакт.
func (c *Client) CreateContact(accessToken string, req models.CreateContactRequest) (models.Contact, error) {
	var resp models.Contact
	err := c.PostJSON("/api/contacts", req, &resp, accessToken)
	return resp, err
}

// UpdateContact частично обновляет контакт: nil-поля req не отправляются.
func (c *Client) UpdateContact(accessToken, id string, req models.UpdateContactRequest) (models.Contact, error) {
	var resp models.Contact
	err := c.PutJSON(contactPath(id), req, &resp, accessToken)
	return resp, err
}

// DeleteContact удаляет контакт и возвращает его последнее состояние.
func (c *Client) DeleteContact(accessToken, id string) (models.Contact, error) {
	var resp models.Contact
	err := c.DeleteJSON(contactPath(id), &resp, accessToken)
	return resp, err
}
