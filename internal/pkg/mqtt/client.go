// Package mqtt conecta ao broker onde os leitores RFID publicam suas leituras.
package mqtt

import (
	"errors"
	"fmt"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"mottufind/internal/pkg/logger"
)

const (
	connectTimeout    = 10 * time.Second
	subscribeTimeout  = 5 * time.Second
	disconnectQuiesce = 1000 // ms
	keepAlive         = 60 * time.Second
	maxQoS            = 2
)

var (
	ErrConnectionFailed = errors.New("mqtt: falha ao conectar ao broker")
	ErrInvalidTopic     = errors.New("mqtt: tópico vazio")
	ErrInvalidQoS       = errors.New("mqtt: QoS deve ser 0, 1 ou 2")
	ErrSubscribeFailed  = errors.New("mqtt: falha ao assinar tópico")
)

// Config é o subconjunto da configuração usado pelo cliente.
type Config struct {
	BrokerURL string
	ClientID  string
}

// MessageHandler processa uma mensagem recebida. Erros são apenas registrados em log.
type MessageHandler func(topic string, payload []byte) error

type subscription struct {
	qos     byte
	handler MessageHandler
}

// Client é seguro para uso concorrente. As assinaturas são refeitas após reconexão.
type Client struct {
	client pahomqtt.Client
	logger logger.Logger

	subscriptions map[string]subscription
	subMu         sync.RWMutex
}

// buildClientOptions monta as opções do paho. O client id recebe um sufixo aleatório
// para que várias réplicas da API possam conectar ao mesmo broker.
func buildClientOptions(cfg Config) *pahomqtt.ClientOptions {
	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(cfg.BrokerURL)
	opts.SetClientID(fmt.Sprintf("%s-%s", cfg.ClientID, uuid.NewString()[:8]))
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(2 * time.Second)
	opts.SetMaxReconnectInterval(time.Minute)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetKeepAlive(keepAlive)
	return opts
}

// Connect abre a conexão com o broker e aguarda até connectTimeout.
func Connect(cfg Config, log logger.Logger) (*Client, error) {
	c := &Client{
		logger:        log,
		subscriptions: make(map[string]subscription),
	}

	opts := buildClientOptions(cfg)
	opts.SetOnConnectHandler(func(_ pahomqtt.Client) {
		log.Info("Conectado ao broker MQTT.", map[string]interface{}{"broker": cfg.BrokerURL})
		c.restoreSubscriptions()
	})
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		log.Warn("Conexão MQTT perdida.", map[string]interface{}{"error": err.Error()})
	})

	c.client = pahomqtt.NewClient(opts)
	token := c.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("%w: timeout após %v", ErrConnectionFailed, connectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	return c, nil
}

// Subscribe assina topic e registra a assinatura para restaurá-la em reconexões.
func (c *Client) Subscribe(topic string, qos byte, handler MessageHandler) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	if qos > maxQoS {
		return ErrInvalidQoS
	}
	if handler == nil {
		return fmt.Errorf("%w: handler nulo", ErrSubscribeFailed)
	}

	c.subMu.Lock()
	c.subscriptions[topic] = subscription{qos: qos, handler: handler}
	c.subMu.Unlock()

	token := c.client.Subscribe(topic, qos, c.wrapHandler(handler))
	if !token.WaitTimeout(subscribeTimeout) {
		return fmt.Errorf("%w: timeout em %s", ErrSubscribeFailed, topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrSubscribeFailed, err)
	}
	return nil
}

func (c *Client) restoreSubscriptions() {
	c.subMu.RLock()
	defer c.subMu.RUnlock()

	for topic, sub := range c.subscriptions {
		c.client.Subscribe(topic, sub.qos, c.wrapHandler(sub.handler))
	}
}

// wrapHandler adapta o handler ao callback do paho e impede que um panic derrube o cliente.
func (c *Client) wrapHandler(handler MessageHandler) pahomqtt.MessageHandler {
	return func(_ pahomqtt.Client, msg pahomqtt.Message) {
		c.dispatch(handler, msg.Topic(), msg.Payload())
	}
}

func (c *Client) dispatch(handler MessageHandler, topic string, payload []byte) {
	defer func() {
		if p := recover(); p != nil {
			c.logger.Error("Panic ao processar mensagem MQTT.", fmt.Errorf("tópico %s: %v", topic, p))
		}
	}()
	if err := handler(topic, payload); err != nil {
		c.logger.Warn("Mensagem MQTT descartada.", map[string]interface{}{"topic": topic, "error": err.Error()})
	}
}

// Close desconecta aguardando o envio das mensagens pendentes.
func (c *Client) Close() {
	if c.client != nil && c.client.IsConnected() {
		c.client.Disconnect(disconnectQuiesce)
	}
}
