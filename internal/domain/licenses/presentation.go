package licenses

// StatusStyle es el par de clases (texto/fondo) que usa la UI para el badge de estado.
type StatusStyle struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// Class concatena ambos tokens como los espera el front.
func (s StatusStyle) Class() string {
	return s.Foreground + " " + s.Background
}

var fallbackStyle = StatusStyle{Foreground: "text-gray-600", Background: "bg-gray-100"}

// StyleFor nunca falla: un estado desconocido devuelve el estilo gris.
func StyleFor(status Status) StatusStyle {
	switch status {
	case StatusActive:
		return StatusStyle{Foreground: "text-green-600", Background: "bg-green-100"}
	case StatusExpired:
		return StatusStyle{Foreground: "text-red-600", Background: "bg-red-100"}
	case StatusSuspended:
		return StatusStyle{Foreground: "text-orange-600", Background: "bg-orange-100"}
	case StatusPending:
		return StatusStyle{Foreground: "text-blue-600", Background: "bg-blue-100"}
	default:
		return fallbackStyle
	}
}

// FallbackStyle expone el estilo por defecto (útil para tests y para la UI).
func FallbackStyle() StatusStyle {
	return fallbackStyle
}
