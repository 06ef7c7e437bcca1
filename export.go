package wishlist

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"
)

// This file contains the export serializers. Each one is a pure function of
// the wish list: it writes the complete encoding to w or fails without
// mutating anything. The caller is responsible for not leaving a partial
// file behind on failure.

// exportDateFormat is the human-readable date layout used in CSV exports.
const exportDateFormat = "Jan 2, 2006"

// Export serializes the wishes with the encoding selected by format.
func Export(w io.Writer, format ExportFormat, wishes []Wish) error {
	switch format {
	case FormatCSV:
		return ExportCSV(w, wishes)
	case FormatJSON:
		return ExportJSON(w, wishes)
	case FormatXML:
		return ExportXML(w, wishes)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// ExportFileName returns a timestamp-suffixed file name for an export, e.g.
// "wishes_1735689600000.csv".
func ExportFileName(format ExportFormat) string {
	return fmt.Sprintf("wishes_%d.%s", time.Now().UnixMilli(), format.Extension())
}

// ExportCSV writes the wishes as CSV with a header row. Fields containing a
// comma, a double quote, or a newline are quoted with internal quotes
// doubled, per RFC 4180.
func ExportCSV(w io.Writer, wishes []Wish) error {
	cw := csv.NewWriter(w)
	header := []string{"Title", "Price", "Currency", "Category", "Link", "Is Purchased", "Created At"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, wish := range wishes {
		purchased := "No"
		if wish.Purchased {
			purchased = "Yes"
		}
		row := []string{
			wish.Title,
			strconv.FormatFloat(wish.Price.AsFloat(), 'f', -1, 64),
			wish.Price.Currency(),
			wish.Category,
			wish.Link,
			purchased,
			wish.TargetDate.Format(exportDateFormat),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write CSV row for wish %q: %w", wish.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot flush CSV: %w", err)
	}
	return nil
}

// ExportJSON writes the wishes as a JSON array with stable field ordering and
// 2-space indentation.
func ExportJSON(w io.Writer, wishes []Wish) error {
	if wishes == nil {
		wishes = []Wish{}
	}
	data, err := json.MarshalIndent(wishes, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal wishes: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write JSON: %w", err)
	}
	return nil
}

// xmlWish is the XML projection of a wish.
type xmlWish struct {
	XMLName   xml.Name `xml:"wish"`
	Title     string   `xml:"title"`
	Price     string   `xml:"price"`
	Currency  string   `xml:"currency"`
	Category  string   `xml:"category"`
	Link      string   `xml:"link"`
	Purchased bool     `xml:"isPurchased"`
	CreatedAt string   `xml:"createdAt"`
}

// ExportXML writes the wishes as an XML document with a <wishes> root and one
// <wish> element per record. Text content is entity-escaped.
func ExportXML(w io.Writer, wishes []Wish) error {
	type xmlWishes struct {
		XMLName xml.Name  `xml:"wishes"`
		Wishes  []xmlWish `xml:"wish"`
	}
	root := xmlWishes{}
	for _, wish := range wishes {
		root.Wishes = append(root.Wishes, xmlWish{
			Title:     wish.Title,
			Price:     strconv.FormatFloat(wish.Price.AsFloat(), 'f', -1, 64),
			Currency:  wish.Price.Currency(),
			Category:  wish.Category,
			Link:      wish.Link,
			Purchased: wish.Purchased,
			CreatedAt: wish.TargetDate.String(),
		})
	}
	data, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal wishes: %w", err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("cannot write XML: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write XML: %w", err)
	}
	return nil
}
