package export

import (
	"encoding/xml"
	"fmt"

	"wayfare/models"
)

// tripDoc is the root element of the exported itinerary document.
type tripDoc struct {
	XMLName         xml.Name    `xml:"itinerary"`
	Name            string      `xml:"name,attr"`
	HomeCity        string      `xml:"homeCity,attr"`
	DestinationCity string      `xml:"destinationCity,attr"`
	StartDate       string      `xml:"startDate,attr"`
	EndDate         string      `xml:"endDate,attr"`
	Events          []eventElem `xml:"event"`
}

type eventElem struct {
	Kind    string `xml:"kind,attr"`
	Day     int    `xml:"day,attr"`
	Date    string `xml:"date,attr"`
	Start   string `xml:"start,attr"`
	End     string `xml:"end,attr"`
	Title   string `xml:"title"`
	Detail  string `xml:"detail,omitempty"`
	Address string `xml:"address,omitempty"`
}

// TripXML serializes a trip's flattened plan stream. The stream arrives
// already in final display order (day-tagged, sorted by absolute start), so
// no reordering happens here; the day attribute comes from each item's day
// tag, never recomputed from its clock time.
func TripXML(trip *models.Trip) ([]byte, error) {
	if trip.Plan == nil {
		return nil, fmt.Errorf("trip %s has no generated plan", trip.ID)
	}

	doc := tripDoc{
		Name:            trip.Name,
		HomeCity:        trip.HomeCity,
		DestinationCity: trip.DestinationCity,
		StartDate:       trip.Window.StartDate,
		EndDate:         trip.Window.EndDate,
		Events:          make([]eventElem, 0, len(trip.Plan.Flat)),
	}

	for _, item := range trip.Plan.Flat {
		elem := eventElem{
			Kind:  string(item.Kind),
			Day:   item.Day,
			Date:  trip.Window.DateOf(item.Day),
			Start: formatClock(item.Start),
			End:   formatClock(item.End),
		}

		switch item.Kind {
		case models.ItemAttraction:
			elem.Title = item.Attraction.Name
			elem.Detail = item.Attraction.Category
		case models.ItemTransit:
			elem.Title = item.Label
			elem.Detail = fmt.Sprintf("%s, %.1f km", item.Transit.Mode, item.Transit.DistanceKM)
		case models.ItemHotel:
			elem.Title = fmt.Sprintf("%s (%s)", item.Hotel.Name, item.Label)
			elem.Address = item.Hotel.Address
		case models.ItemMeal:
			elem.Title = item.Label
		case models.ItemSleep:
			elem.Title = "Sleep"
		}

		doc.Events = append(doc.Events, elem)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal itinerary: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// formatClock renders seconds-from-midnight as HH:MM wall-clock time,
// wrapping past midnight for overnight windows.
func formatClock(seconds int) string {
	seconds %= 24 * 3600
	return fmt.Sprintf("%02d:%02d", seconds/3600, (seconds%3600)/60)
}
