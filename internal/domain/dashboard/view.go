package dashboard

import (
	"strconv"

	"license-management/internal/domain/activity"
	"license-management/internal/domain/licenses"
)

const (
	PageTitle       = "License Management Module"
	PageDescription = "Manage import/export licenses and permits with shared state"
)

type Header struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StatCard es lo que consume el componente StatCard del host (title/value/icon/color).
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Shared indica si el dato del store compartido se pudo leer.
type SharedCounter struct {
	Value     int  `json:"value"`
	Available bool `json:"available"`
}

type SharedUsers struct {
	TotalCount int  `json:"totalCount"`
	Available  bool `json:"available"`
}

// View es todo lo que necesita la página en un render.
type View struct {
	Header     Header
	Stats      []StatCard
	Counter    SharedCounter
	Users      SharedUsers
	Metrics    licenses.Metrics
	WindowDays int
	Licenses   []licenses.Row
	Activity   []activity.FeedItem
	Notice     string
}

func statCards(m licenses.Metrics, c SharedCounter) []StatCard {
	counter := licenses.EmptyValue
	if c.Available {
		counter = strconv.Itoa(c.Value)
	}
	return []StatCard{
		{Title: "Active Licenses", Value: strconv.Itoa(m.Active), Icon: "📜", Color: "emerald"},
		{Title: "Expiring Soon", Value: strconv.Itoa(m.ExpiringSoon), Icon: "⚠️", Color: "orange"},
		{Title: "Pending", Value: strconv.Itoa(m.Pending), Icon: "⏳", Color: "blue"},
		{Title: "Counter (Shared)", Value: counter, Icon: "🔢", Color: "purple"},
	}
}
