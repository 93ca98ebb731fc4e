package request

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
)

// MsgMalformedPayload is returned when the body is not a JSON object.
const MsgMalformedPayload = "payload harus berupa objek JSON yang valid"

// Payload decodes the JSON body as a raw payload for the domain validators.
// An empty body yields an empty payload so that validation reports the missing fields.
func Payload(c *gin.Context) (domain.Payload, error) {
	payload := domain.Payload{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Payload{}, nil
		}
		logrus.Debugf("malformed request body: %v", err)
		return nil, &domain.Error{Kind: domain.ErrBadParamInput, Message: MsgMalformedPayload}
	}
	if payload == nil {
		payload = domain.Payload{}
	}
	return payload, nil
}
