package dto

// CheckoutRequest selección de plan para generar la preferencia de pago.
type CheckoutRequest struct {
	Plan string `json:"plan" validate:"required,oneof=mensual anual premium"`
}

// CheckoutResponse preferencia creada: el cliente redirige a InitPoint.
type CheckoutResponse struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

// WebhookNotification cuerpo de la notificación de Mercado Pago.
// El campo data.id referencia el pago; el resto del cuerpo no se usa para
// decisiones financieras (siempre se reconsulta el pago a la API oficial).
type WebhookNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// WebhookAck respuesta del webhook.
type WebhookAck struct {
	Received bool   `json:"received"`
	Ignored  string `json:"ignored,omitempty"`
	Updated  bool   `json:"updated,omitempty"`
}
