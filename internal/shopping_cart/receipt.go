package shopping_cart

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ReceiptLine строка чека
type ReceiptLine struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// Receipt чек, сформированный при оформлении заказа
type Receipt struct {
	Lines []ReceiptLine `json:"items"`
	Total float64       `json:"total"`
}

func (r Receipt) Empty() bool {
	return len(r.Lines) == 0
}

var totalColor = color.New(color.Bold, color.FgGreen)

// Fprint печатает чек в читаемом виде, итог выделен цветом
func (r Receipt) Fprint(w io.Writer) error {
	return r.fprint(w, totalColor)
}

// String текст чека для логов, без цвета
func (r Receipt) String() string {
	var sb strings.Builder
	_ = r.fprint(&sb, nil)

	return sb.String()
}

func (r Receipt) fprint(w io.Writer, total *color.Color) error {
	if r.Empty() {
		_, err := fmt.Fprintln(w, "Your cart is empty!")
		return err
	}

	// строка итога идет через тот же tabwriter, чтобы сумма встала в колонку цен
	var table bytes.Buffer
	tw := tabwriter.NewWriter(&table, 0, 0, 2, ' ', 0)
	for _, line := range r.Lines {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\n", line.Name, line.Quantity, line.TotalPrice)
	}
	fmt.Fprintf(tw, "Total:\t\t%.2f\n", r.Total)
	if err := tw.Flush(); err != nil {
		return err
	}

	text := strings.TrimSuffix(table.String(), "\n")
	cut := strings.LastIndex(text, "\n") + 1
	lines, totalLine := text[:cut], text[cut:]

	if _, err := fmt.Fprint(w, lines, strings.Repeat("-", 40), "\n"); err != nil {
		return err
	}

	var err error
	if total != nil {
		_, err = total.Fprintln(w, totalLine)
	} else {
		_, err = fmt.Fprintln(w, totalLine)
	}

	return err
}
