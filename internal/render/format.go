package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"startify/internal/domain"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// usd renders an amount the way investors read it: "$374B", "$2.5M", "$49".
func usd(amount int64) string {
	switch {
	case amount >= 1_000_000_000:
		return "$" + trimZero(float64(amount)/1_000_000_000) + "B"
	case amount >= 1_000_000:
		return "$" + trimZero(float64(amount)/1_000_000) + "M"
	case amount >= 1_000:
		return "$" + trimZero(float64(amount)/1_000) + "K"
	default:
		return "$" + strconv.FormatInt(amount, 10)
	}
}

// usdExact renders the fully grouped figure: "$2,000,000".
func usdExact(amount int64) string {
	return usPrinter.Sprintf("$%d", amount)
}

func trimZero(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// docTitle turns a document type tag into a display heading, e.g.
// "business-plan" -> "Business Plan".
func docTitle(t domain.DocumentType) string {
	return cases.Title(language.AmericanEnglish).String(strings.ReplaceAll(string(t), "-", " "))
}

func industryOr(idea domain.StartupIdea, fallback string) string {
	if idea.Industry != "" {
		return idea.Industry
	}
	return fallback
}

// htmlPage wraps a body in the shared document chrome.
func htmlPage(title, style, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
%s
    </style>
</head>
<body>
%s
</body>
</html>`, title, style, body)
}

const baseStyle = `        body { font-family: 'Segoe UI', sans-serif; line-height: 1.6; margin: 40px; color: #333; }
        h1 { color: #2c3e50; text-align: center; }
        h2 { color: #34495e; border-bottom: 2px solid #3498db; padding-bottom: 10px; }
        h3 { color: #2c3e50; margin-top: 25px; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
        th { background: #f2f2f2; font-weight: 600; }
        .highlight { background: #e8f6f3; padding: 20px; border-radius: 8px; margin: 20px 0; }
        .section { margin-bottom: 40px; }
        .total-row { background: #f8fafc; font-weight: bold; }
        ul { padding-left: 25px; }
        li { margin-bottom: 8px; }`
