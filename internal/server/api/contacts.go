// HTTP-хендлеры CRUD контактов. Все маршруты за AuthMiddleware.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	serverModels "github.com/IvanChernomyrdin/go-contacts-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/shared/models"
)

// contactID читает {id} из пути. Не-UUID не может существовать в базе, поэтому 404.
func contactID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.WithStack(serr.ErrContactNotFound)
	}
	return id, nil
}

// ListContacts возвращает все контакты текущего пользователя.
//
// @Summary      List contacts
// @Description  Returns all contacts owned by the authenticated user.
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Contact
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/contacts [get]
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	user, err := identity(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	contacts, err := h.Svc.Contacts.List(r.Context(), user.ID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	resp := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		resp = append(resp, c.ToAPI())
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateContact создаёт контакт, владелец — текущий пользователь.
//
// @Summary      Create contact
// @Description  Creates a contact owned by the authenticated user. All fields are mandatory.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CreateContactRequest true "Create contact request"
// @Success      201 {object} models.Contact
// @Failure      400 {object} models.ErrorResponse "All fields are mandatory or bad JSON"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/contacts [post]
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	user, err := identity(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	var req models.CreateContactRequest
	if err := decodeJSON(r, &req); err != nil {
		h.WriteError(w, r, err)
		return
	}

	c, err := h.Svc.Contacts.Create(r.Context(), user.ID, req.Name, req.Email, req.Phone)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, c.ToAPI())
}

// GetContact возвращает контакт по id.
//
// @Summary      Get contact
// @Description  Returns a single contact. Contacts of other users are forbidden.
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Contact ID (UUID)"
// @Success      200 {object} models.Contact
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      403 {object} models.ErrorResponse "Contact belongs to another user"
// @Failure      404 {object} models.ErrorResponse "Contact not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/contacts/{id} [get]
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	user, err := identity(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	id, err := contactID(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	c, err := h.Svc.Contacts.Get(r.Context(), user.ID, id)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, c.ToAPI())
}

// UpdateContact частично обновляет контакт: отсутствующие поля не меняются.
//
// @Summary      Update contact
// @Description  Partially updates a contact. Absent fields stay unchanged, empty values are rejected.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Contact ID (UUID)"
// @Param        request body models.UpdateContactRequest true "Fields to change"
// @Success      200 {object} models.Contact
// @Failure      400 {object} models.ErrorResponse "Empty field or bad JSON"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      403 {object} models.ErrorResponse "Contact belongs to another user"
// @Failure      404 {object} models.ErrorResponse "Contact not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/contacts/{id} [put]
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	user, err := identity(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	id, err := contactID(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	var req models.UpdateContactRequest
	if err := decodeJSON(r, &req); err != nil {
		h.WriteError(w, r, err)
		return
	}

	c, err := h.Svc.Contacts.Update(r.Context(), user.ID, id, serverModels.ContactPatch{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, c.ToAPI())
}

// DeleteContact удаляет контакт и возвращает его.
//
// @Summary      Delete contact
// @Description  Deletes a contact owned by the authenticated user and returns it.
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Contact ID (UUID)"
// @Success      200 {object} models.Contact
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      403 {object} models.ErrorResponse "Contact belongs to another user"
// @Failure      404 {object} models.ErrorResponse "Contact not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/contacts/{id} [delete]
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	user, err := identity(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	id, err := contactID(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	c, err := h.Svc.Contacts.Delete(r.Context(), user.ID, id)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, c.ToAPI())
}
