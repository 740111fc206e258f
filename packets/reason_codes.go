package packets

import "fmt"

// Reason codes (spec section 6.4). These are diagnostic labels only — the
// codec never rejects an unrecognized one-byte value; interpreting a
// reason code is the session layer's job, not the wire codec's.
const (
	ReasonSuccess                           uint8 = 0x00 // also NormalDisconnection, GrantedQoS0
	ReasonGrantedQoS1                       uint8 = 0x01
	ReasonGrantedQoS2                       uint8 = 0x02
	ReasonDisconnectWithWillMessage         uint8 = 0x04
	ReasonNoMatchingSubscribers             uint8 = 0x10
	ReasonNoSubscriptionExisted             uint8 = 0x11
	ReasonContinueAuthentication            uint8 = 0x18
	ReasonReAuthenticate                    uint8 = 0x19
	ReasonUnspecifiedError                  uint8 = 0x80
	ReasonMalformedPacket                   uint8 = 0x81
	ReasonProtocolError                     uint8 = 0x82
	ReasonImplementationSpecificError       uint8 = 0x83
	ReasonUnsupportedProtocolVersion        uint8 = 0x84
	ReasonClientIdentifierNotValid          uint8 = 0x85
	ReasonBadUserNameOrPassword             uint8 = 0x86
	ReasonNotAuthorized                     uint8 = 0x87
	ReasonServerUnavailable                 uint8 = 0x88
	ReasonServerBusy                        uint8 = 0x89
	ReasonBanned                            uint8 = 0x8A
	ReasonServerShuttingDown                uint8 = 0x8B
	ReasonBadAuthenticationMethod           uint8 = 0x8C
	ReasonKeepAliveTimeout                  uint8 = 0x8D
	ReasonSessionTakenOver                  uint8 = 0x8E
	ReasonTopicFilterInvalid                uint8 = 0x8F
	ReasonTopicNameInvalid                  uint8 = 0x90
	ReasonPacketIdentifierInUse             uint8 = 0x91
	ReasonPacketIdentifierNotFound          uint8 = 0x92
	ReasonReceiveMaximumExceeded            uint8 = 0x93
	ReasonTopicAliasInvalid                 uint8 = 0x94
	ReasonPacketTooLarge                    uint8 = 0x95
	ReasonMessageRateTooHigh                uint8 = 0x96
	ReasonQuotaExceeded                     uint8 = 0x97
	ReasonAdministrativeAction              uint8 = 0x98
	ReasonPayloadFormatInvalid              uint8 = 0x99
	ReasonRetainNotSupported                uint8 = 0x9A
	ReasonQoSNotSupported                   uint8 = 0x9B
	ReasonUseAnotherServer                  uint8 = 0x9C
	ReasonServerMoved                       uint8 = 0x9D
	ReasonSharedSubscriptionsNotSupported   uint8 = 0x9E
	ReasonConnectionRateExceeded            uint8 = 0x9F
	ReasonMaximumConnectTime                uint8 = 0xA0
	ReasonSubscriptionIdentifiersNotSupported uint8 = 0xA1
	ReasonWildcardSubscriptionsNotSupported   uint8 = 0xA2
)

// reasonNames maps reason codes to their spec names for Dump. A code
// absent from this map is not malformed — it is printed as a raw hex
// value, per spec section 6.4's "unknown reason codes decode without
// error."
var reasonNames = map[uint8]string{
	ReasonSuccess:                             "Success",
	ReasonGrantedQoS1:                         "GrantedQoS1",
	ReasonGrantedQoS2:                         "GrantedQoS2",
	ReasonDisconnectWithWillMessage:           "DisconnectWithWillMessage",
	ReasonNoMatchingSubscribers:               "NoMatchingSubscribers",
	ReasonNoSubscriptionExisted:               "NoSubscriptionExisted",
	ReasonContinueAuthentication:              "ContinueAuthentication",
	ReasonReAuthenticate:                      "ReAuthenticate",
	ReasonUnspecifiedError:                    "UnspecifiedError",
	ReasonMalformedPacket:                     "MalformedPacket",
	ReasonProtocolError:                       "ProtocolError",
	ReasonImplementationSpecificError:         "ImplementationSpecificError",
	ReasonUnsupportedProtocolVersion:          "UnsupportedProtocolVersion",
	ReasonClientIdentifierNotValid:            "ClientIdentifierNotValid",
	ReasonBadUserNameOrPassword:               "BadUserNameOrPassword",
	ReasonNotAuthorized:                       "NotAuthorized",
	ReasonServerUnavailable:                   "ServerUnavailable",
	ReasonServerBusy:                          "ServerBusy",
	ReasonBanned:                              "Banned",
	ReasonServerShuttingDown:                  "ServerShuttingDown",
	ReasonBadAuthenticationMethod:             "BadAuthenticationMethod",
	ReasonKeepAliveTimeout:                    "KeepAliveTimeout",
	ReasonSessionTakenOver:                    "SessionTakenOver",
	ReasonTopicFilterInvalid:                  "TopicFilterInvalid",
	ReasonTopicNameInvalid:                    "TopicNameInvalid",
	ReasonPacketIdentifierInUse:               "PacketIdentifierInUse",
	ReasonPacketIdentifierNotFound:            "PacketIdentifierNotFound",
	ReasonReceiveMaximumExceeded:              "ReceiveMaximumExceeded",
	ReasonTopicAliasInvalid:                   "TopicAliasInvalid",
	ReasonPacketTooLarge:                      "PacketTooLarge",
	ReasonMessageRateTooHigh:                  "MessageRateTooHigh",
	ReasonQuotaExceeded:                       "QuotaExceeded",
	ReasonAdministrativeAction:                "AdministrativeAction",
	ReasonPayloadFormatInvalid:                "PayloadFormatInvalid",
	ReasonRetainNotSupported:                  "RetainNotSupported",
	ReasonQoSNotSupported:                     "QoSNotSupported",
	ReasonUseAnotherServer:                    "UseAnotherServer",
	ReasonServerMoved:                         "ServerMoved",
	ReasonSharedSubscriptionsNotSupported:     "SharedSubscriptionsNotSupported",
	ReasonConnectionRateExceeded:              "ConnectionRateExceeded",
	ReasonMaximumConnectTime:                  "MaximumConnectTime",
	ReasonSubscriptionIdentifiersNotSupported: "SubscriptionIdentifiersNotSupported",
	ReasonWildcardSubscriptionsNotSupported:   "WildcardSubscriptionsNotSupported",
}

// ReasonName returns the spec name for a reason code, or a hex fallback
// ("0xNN") for codes outside the fixed enumeration.
func ReasonName(code uint8) string {
	if name, ok := reasonNames[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", code)
}
