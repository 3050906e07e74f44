// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

type graphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type graphQLError struct {
	Message   string `json:"message"`
	ErrorType string `json:"errorType"`
	Path      []any  `json:"path,omitempty"`
}

// wireSudo is the selection set shared by every operation.
type wireSudo struct {
	ID               string                `json:"id"`
	Claims           []models.SecureClaim  `json:"claims"`
	Objects          []models.SecureObject `json:"objects"`
	Metadata         []models.Attribute    `json:"metadata"`
	Version          int                   `json:"version"`
	CreatedAtEpochMs float64               `json:"createdAtEpochMs"`
	UpdatedAtEpochMs float64               `json:"updatedAtEpochMs"`
	Owner            string                `json:"owner"`
}

func (w wireSudo) remote() models.RemoteSudo {
	out := models.RemoteSudo{
		ID:               w.ID,
		Claims:           w.Claims,
		Objects:          w.Objects,
		Metadata:         w.Metadata,
		Version:          w.Version,
		CreatedAtEpochMs: w.CreatedAtEpochMs,
		UpdatedAtEpochMs: w.UpdatedAtEpochMs,
		Owner:            w.Owner,
	}
	if out.Claims == nil {
		out.Claims = []models.SecureClaim{}
	}
	if out.Objects == nil {
		out.Objects = []models.SecureObject{}
	}
	if out.Metadata == nil {
		out.Metadata = []models.Attribute{}
	}
	return out
}

// Per-operation response envelopes. Each one is normalised by its own
// function so a schema change touches one place.

type createSudoData struct {
	CreateSudo *wireSudo `json:"createSudo"`
}

func (d createSudoData) normalize() (models.RemoteSudo, bool) {
	if d.CreateSudo == nil {
		return models.RemoteSudo{}, false
	}
	return d.CreateSudo.remote(), true
}

type getSudoData struct {
	GetSudo *wireSudo `json:"getSudo"`
}

func (d getSudoData) normalize() (models.RemoteSudo, bool) {
	if d.GetSudo == nil {
		return models.RemoteSudo{}, false
	}
	return d.GetSudo.remote(), true
}

type listSudosData struct {
	ListSudos *struct {
		Items     []wireSudo `json:"items"`
		NextToken *string    `json:"nextToken"`
	} `json:"listSudos"`
}

func (d listSudosData) normalize() (models.SudoPage, bool) {
	if d.ListSudos == nil {
		return models.SudoPage{}, false
	}
	page := models.SudoPage{
		Items:     make([]models.RemoteSudo, 0, len(d.ListSudos.Items)),
		NextToken: d.ListSudos.NextToken,
	}
	if page.NextToken != nil && *page.NextToken == "" {
		page.NextToken = nil
	}
	for _, item := range d.ListSudos.Items {
		page.Items = append(page.Items, item.remote())
	}
	return page, true
}

type updateSudoData struct {
	UpdateSudo *wireSudo `json:"updateSudo"`
}

func (d updateSudoData) normalize() (models.RemoteSudo, bool) {
	if d.UpdateSudo == nil {
		return models.RemoteSudo{}, false
	}
	return d.UpdateSudo.remote(), true
}

type deleteSudoData struct {
	DeleteSudo *wireSudo `json:"deleteSudo"`
}

func (d deleteSudoData) normalize() (models.RemoteSudo, bool) {
	if d.DeleteSudo == nil {
		return models.RemoteSudo{}, false
	}
	return d.DeleteSudo.remote(), true
}

type onCreateSudoData struct {
	OnCreateSudo *wireSudo `json:"onCreateSudo"`
}

func (d onCreateSudoData) normalize() (models.RemoteSudo, bool) {
	if d.OnCreateSudo == nil {
		return models.RemoteSudo{}, false
	}
	return d.OnCreateSudo.remote(), true
}

type onUpdateSudoData struct {
	OnUpdateSudo *wireSudo `json:"onUpdateSudo"`
}

func (d onUpdateSudoData) normalize() (models.RemoteSudo, bool) {
	if d.OnUpdateSudo == nil {
		return models.RemoteSudo{}, false
	}
	return d.OnUpdateSudo.remote(), true
}

type onDeleteSudoData struct {
	OnDeleteSudo *wireSudo `json:"onDeleteSudo"`
}

func (d onDeleteSudoData) normalize() (models.RemoteSudo, bool) {
	if d.OnDeleteSudo == nil {
		return models.RemoteSudo{}, false
	}
	return d.OnDeleteSudo.remote(), true
}

// subscriptionOperation describes one push subscription document.
type subscriptionOperation struct {
	name   string
	query  string
	decode func(data json.RawMessage) (models.RemoteSudo, bool, error)
}

func decodeEvent[T interface {
	normalize() (models.RemoteSudo, bool)
}](data json.RawMessage) (models.RemoteSudo, bool, error) {
	var envelope T
	if err := json.Unmarshal(data, &envelope); err != nil {
		return models.RemoteSudo{}, false, err
	}
	sudo, ok := envelope.normalize()
	return sudo, ok, nil
}

var subscriptionOperations = map[models.ChangeType]subscriptionOperation{
	models.ChangeTypeCreate: {name: "OnCreateSudo", query: onCreateSudoSubscription, decode: decodeEvent[onCreateSudoData]},
	models.ChangeTypeUpdate: {name: "OnUpdateSudo", query: onUpdateSudoSubscription, decode: decodeEvent[onUpdateSudoData]},
	models.ChangeTypeDelete: {name: "OnDeleteSudo", query: onDeleteSudoSubscription, decode: decodeEvent[onDeleteSudoData]},
}
