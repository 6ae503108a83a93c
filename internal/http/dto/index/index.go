// Package index contiene el DTO del endpoint raíz.
package index

// IndexResponse describe el servidor y las rutas que documenta.
type IndexResponse struct {
	Message            string   `json:"message"`
	AvailableEndpoints []string `json:"availableEndpoints"`
	Usage              string   `json:"usage"`
}
