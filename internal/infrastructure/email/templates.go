package email

import "html/template"

// Inline HTML bodies for the two transactional emails. Kept small on purpose;
// anything heavier belongs in a real template pipeline.

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #14508c;">Welcome to {{.AppName}}!</h2>
  <p>Hi {{.SellerName}},</p>
  <p>Your seller account is ready. You can now list products and start selling.</p>
  <p>A 10% platform fee applies to each sale; the rest is yours.</p>
  <p>Happy selling!<br>The {{.AppName}} team</p>
</div>`))

var saleTmpl = template.Must(template.New("sale").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #14508c;">You made a sale!</h2>
  <p>Your product <strong>{{.ProductName}}</strong> was purchased by {{.BuyerEmail}}.</p>
  <table style="border-collapse: collapse; width: 100%;">
    <tr><td style="padding: 4px 8px;">Sale amount</td><td style="padding: 4px 8px; text-align: right;">${{.SaleAmount}}</td></tr>
    <tr><td style="padding: 4px 8px;">Platform fee (10%)</td><td style="padding: 4px 8px; text-align: right;">-${{.CommissionAmount}}</td></tr>
    <tr><td style="padding: 4px 8px;"><strong>Your earnings</strong></td><td style="padding: 4px 8px; text-align: right;"><strong>${{.SellerAmount}}</strong></td></tr>
  </table>
  <p>The {{.AppName}} team</p>
</div>`))
