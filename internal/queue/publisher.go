package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"tr4cking/internal/utils"
)

// Publisher publica eventos de dominio en RabbitMQ. Los errores se
// loguean y se devuelven para que el caller decida ignorarlos; la
// emisión de un pasaje nunca falla por el broker.
type Publisher struct {
	URL string
}

// Publicar declara la cola (durable, idempotente) y publica el evento
// como JSON persistente.
func (p Publisher) Publicar(ctx context.Context, cola string, evento any) error {
	if p.URL == "" {
		return nil
	}

	conn, err := amqp.Dial(p.URL)
	if err != nil {
		utils.LogEvent("", "queue", "dial", "rabbitmq: fallo de conexión: "+err.Error())
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		utils.LogEvent("", "queue", "channel", "rabbitmq: fallo abriendo canal: "+err.Error())
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(cola, true, false, false, false, nil); err != nil {
		utils.LogEvent("", "queue", "declare", "rabbitmq: fallo declarando cola: "+err.Error())
		return err
	}

	body, err := json.Marshal(evento)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", cola, false, false, pub); err != nil {
		utils.LogEvent("", "queue", "publish", "rabbitmq: fallo publicando en "+cola+": "+err.Error())
		return err
	}
	return nil
}
