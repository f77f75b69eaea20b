/*
Package crmsdk is a Go client for the VOS CRM API.

# SDKClient vs Session

SDKClient covers the public endpoints and creates sessions:

	client := crmsdk.NewSDKClient("http://localhost:8080")

	health, err := client.GetHealth(ctx)
	invite, err := client.ValidateInvite(ctx, token)

	session, err := client.Login(ctx, "anne@vos-crm.nl", "correct horse")

A Session carries the bearer token and exposes everything that needs one:

	page, err := session.ListCustomers(ctx, crmsdk.ListCustomersParams{Q: "Sophie"})
	doc, err := session.UploadDocument(ctx, customerID, "offerte.pdf", file)
	_, err = session.ExportCustomers(ctx, w)

Tokens are not refreshed; log in again when a call fails with 401.

# Errors

Non-2xx responses are returned as *APIError carrying the status code and the
error code from the body:

	if crmsdk.IsStatus(err, http.StatusConflict) {
		// e-mail already in use
	}

The wire types in this package (Customer, Task, DashboardLayout, ...) are the
same structs the server encodes, so they double as API documentation.
*/
package crmsdk
