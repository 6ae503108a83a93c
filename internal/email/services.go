package email

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed services.yaml
var servicesYAML []byte

// Endpoint es el destino SMTP resuelto para un servicio.
type Endpoint struct {
	Host   string
	Port   int
	Secure bool // TLS implícito (SMTPS); false => STARTTLS oportunista
}

type wellKnownEntry struct {
	Aliases []string `yaml:"aliases"`
	Domains []string `yaml:"domains"`
	Host    string   `yaml:"host"`
	Port    int      `yaml:"port"`
	Secure  bool     `yaml:"secure"`
}

const defaultSubmissionPort = 587

var wellKnown = sync.OnceValues(func() (map[string]Endpoint, error) {
	return parseWellKnown(servicesYAML)
})

// parseWellKnown indexa cada nombre, alias y dominio normalizado.
func parseWellKnown(b []byte) (map[string]Endpoint, error) {
	var raw map[string]wellKnownEntry
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse well-known services: %w", err)
	}

	out := make(map[string]Endpoint, len(raw)*3)
	for name, e := range raw {
		if e.Host == "" || e.Port <= 0 {
			return nil, fmt.Errorf("well-known service %q: host and port are required", name)
		}
		ep := Endpoint{Host: e.Host, Port: e.Port, Secure: e.Secure}
		keys := append([]string{name}, e.Aliases...)
		keys = append(keys, e.Domains...)
		for _, k := range keys {
			out[normalizeServiceKey(k)] = ep
		}
	}
	return out, nil
}

// normalizeServiceKey lower-cases and drops everything outside [a-z0-9.-].
func normalizeServiceKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LookupService busca un servicio well-known por nombre, alias o dominio.
func LookupService(service string) (Endpoint, bool) {
	table, err := wellKnown()
	if err != nil {
		return Endpoint{}, false
	}
	ep, ok := table[normalizeServiceKey(service)]
	return ep, ok
}

// Resolve determina host/puerto/TLS para s.
//
// Orden: Host explícito > tabla well-known > identificador con punto usado
// como hostname. Port y Secure explícitos pisan lo resuelto.
func Resolve(s Settings) (Endpoint, error) {
	var ep Endpoint

	switch {
	case strings.TrimSpace(s.Host) != "":
		ep = Endpoint{Host: strings.TrimSpace(s.Host), Port: defaultSubmissionPort}
		if s.Secure {
			ep.Port = 465
		}
	default:
		if known, ok := LookupService(s.Service); ok {
			ep = known
			break
		}
		host := strings.TrimSpace(s.Service)
		if host == "" || !strings.Contains(host, ".") || strings.ContainsAny(host, " /:@") {
			return Endpoint{}, fmt.Errorf("%w: %q", ErrUnknownService, s.Service)
		}
		ep = Endpoint{Host: host, Port: defaultSubmissionPort}
	}

	if s.Port > 0 {
		ep.Port = s.Port
	}
	if s.Secure || ep.Port == 465 {
		ep.Secure = true
	}
	return ep, nil
}
