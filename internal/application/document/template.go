package document

// contractTemplateHTML is the rental contract layout rendered to PDF.
// Styling is inline so the document renders without external assets.
const contractTemplateHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Rental Contract {{.ContractNumber}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #1a1a1a; margin: 40px; }
  h1 { font-size: 20px; border-bottom: 2px solid #1a1a1a; padding-bottom: 8px; }
  h2 { font-size: 14px; margin-top: 24px; }
  table { width: 100%; border-collapse: collapse; margin-top: 8px; }
  td, th { padding: 6px 8px; border: 1px solid #ccc; text-align: left; }
  th { background: #f2f2f2; width: 35%; }
  .totals td { font-weight: bold; }
  .signatures { margin-top: 60px; display: flex; justify-content: space-between; }
  .signature-box { width: 40%; border-top: 1px solid #1a1a1a; padding-top: 6px; font-size: 11px; }
  .footer { margin-top: 40px; font-size: 10px; color: #777; }
</style>
</head>
<body>
<h1>Vehicle Rental Contract</h1>
<p>Contract number: <strong>{{.ContractNumber}}</strong><br>
Issued on: {{.IssuedAt}}</p>

<h2>Renter</h2>
<table>
  <tr><th>Name</th><td>{{.CustomerName}}</td></tr>
  {{if .CustomerEmail}}<tr><th>Email</th><td>{{.CustomerEmail}}</td></tr>{{end}}
  {{if .CustomerPhone}}<tr><th>Phone</th><td>{{.CustomerPhone}}</td></tr>{{end}}
</table>

<h2>Vehicle</h2>
<table>
  <tr><th>Registration plate</th><td>{{.Plate}}</td></tr>
  <tr><th>Make and model</th><td>{{.Make}} {{.Model}}</td></tr>
  <tr><th>Year</th><td>{{.Year}}</td></tr>
</table>

<h2>Rental Period and Price</h2>
<table>
  <tr><th>Pickup</th><td>{{.PickupAt}}</td></tr>
  <tr><th>Return</th><td>{{.ReturnAt}}</td></tr>
  <tr><th>Daily rate</th><td>{{.DailyRate}} {{.Currency}}</td></tr>
  <tr class="totals"><th>Total price</th><td>{{.TotalPrice}} {{.Currency}}</td></tr>
  <tr><th>Deposit due at pickup</th><td>{{.Deposit}} {{.Currency}}</td></tr>
</table>

{{if .Notes}}
<h2>Notes</h2>
<p>{{.Notes}}</p>
{{end}}

<div class="signatures">
  <div class="signature-box">Renter signature</div>
  <div class="signature-box">Operator signature</div>
</div>

<div class="footer">
This contract was generated electronically and is valid together with the
operator's general rental terms.
</div>
</body>
</html>`
