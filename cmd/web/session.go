package main

type sessionKey string

// draftIDSessionKey binds the active drafting session to the browser session.
const draftIDSessionKey = sessionKey("draftID")
const chatHistorySessionKey = sessionKey("chatHistory")
