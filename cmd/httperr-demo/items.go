// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/stacklok/toolhive-httperr/handler"
	"github.com/stacklok/toolhive-httperr/httperr"
	httpval "github.com/stacklok/toolhive-httperr/validation/http"
	"github.com/stacklok/toolhive-httperr/validation/name"
)

// requestIDHeader must be present and valid on writes.
const requestIDHeader = "X-Request-Id"

var errNoItem = errors.New("no such item")

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type store struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]item
}

func newStore() *store {
	return &store{nextID: 1, items: make(map[int]item)}
}

func (s *store) get(id int) (item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok {
		return item{}, fmt.Errorf("item %d: %w", id, errNoItem)
	}
	return it, nil
}

func (s *store) add(itemName string) item {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := item{ID: s.nextID, Name: itemName}
	s.items[it.ID] = it
	s.nextID++
	return it
}

func newRouter(log httperr.Logger, s *store) http.Handler {
	b := handler.NewBoundary(log)
	r := handler.NewRouter(b)

	r.Method(http.MethodGet, "/health", b.Handle(func(w http.ResponseWriter, _ *http.Request) error {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
		return nil
	}))
	r.Method(http.MethodGet, "/items/{id}", b.Handle(s.getItem))
	r.Method(http.MethodPost, "/items", b.Handle(s.createItem))
	r.Method(http.MethodGet, "/admin", b.Handle(func(http.ResponseWriter, *http.Request) error {
		return httperr.Forbidden().WithMessage("admin area is disabled")
	}))
	r.Method(http.MethodGet, "/panic", b.Handle(func(http.ResponseWriter, *http.Request) error {
		panic("demo panic")
	}))
	return r
}

func (s *store) getItem(w http.ResponseWriter, r *http.Request) error {
	id, err := httperr.From(strconv.Atoi(chi.URLParam(r, "id"))).ClientErr()
	if err != nil {
		return err
	}

	it, err := httperr.From(s.get(id)).WithErrMsg(http.StatusNotFound, func() string {
		return fmt.Sprintf("item %d not found", id)
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, it)
}

func (s *store) createItem(w http.ResponseWriter, r *http.Request) error {
	requestID := r.Header.Get(requestIDHeader)
	if requestID == "" {
		return httperr.BadRequestf("missing %s header", requestIDHeader)
	}
	if err := httpval.ValidateHeader(requestIDHeader, requestID); err != nil {
		return httperr.BadRequest().WithMessage("invalid request id").WithCause(err)
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := httperr.ClientErr(json.NewDecoder(r.Body).Decode(&req)); err != nil {
		return err
	}
	if strings.TrimSpace(req.Name) == "" {
		return httperr.BadRequest().WithMessage("missing field: name")
	}
	if err := name.Validate(req.Name); err != nil {
		return httperr.BadRequest().WithMessage("invalid item name").WithCause(err)
	}

	return writeJSON(w, http.StatusCreated, s.add(req.Name))
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return httperr.ServerErr(err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
	return nil
}
