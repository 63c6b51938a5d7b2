// Package hateoas monta os links de navegação devolvidos junto aos recursos.
package hateoas

import (
	"fmt"
	"net/http"
	"strings"

	"mottufind/internal/domain"
)

// Link é um link hipermídia com a relação e o método HTTP a usar.
type Link struct {
	Href   string `json:"href" example:"/api/v1/moto/1"`
	Rel    string `json:"rel" example:"self"`
	Method string `json:"method" example:"GET"`
}

// Resource envolve um recurso com seus links.
type Resource[T any] struct {
	Data  T      `json:"data"`
	Links []Link `json:"links"`
}

// Wrap cria o envelope de um recurso.
func Wrap[T any](data T, links ...Link) Resource[T] {
	if links == nil {
		links = []Link{}
	}
	return Resource[T]{Data: data, Links: links}
}

// ItemLinks devolve self, update, delete e all para o item em itemPath.
// collectionPath é a coleção à qual o item pertence.
func ItemLinks(itemPath, collectionPath string) []Link {
	return []Link{
		{Href: itemPath, Rel: "self", Method: http.MethodGet},
		{Href: itemPath, Rel: "update", Method: http.MethodPut},
		{Href: itemPath, Rel: "delete", Method: http.MethodDelete},
		{Href: collectionPath, Rel: "all", Method: http.MethodGet},
	}
}

// PageLinks devolve self e, quando aplicável, next (p*s < total) e prev (p > 1).
func PageLinks(pagedPath string, numeroPag, tamanhoPag, total int) []Link {
	links := []Link{{Href: pageHref(pagedPath, numeroPag, tamanhoPag), Rel: "self", Method: http.MethodGet}}
	if domain.HasNextPage(numeroPag, tamanhoPag, total) {
		links = append(links, Link{Href: pageHref(pagedPath, numeroPag+1, tamanhoPag), Rel: "next", Method: http.MethodGet})
	}
	if numeroPag > 1 {
		links = append(links, Link{Href: pageHref(pagedPath, numeroPag-1, tamanhoPag), Rel: "prev", Method: http.MethodGet})
	}
	return links
}

func pageHref(path string, numeroPag, tamanhoPag int) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%snumeroPag=%d&tamanhoPag=%d", path, sep, numeroPag, tamanhoPag)
}
