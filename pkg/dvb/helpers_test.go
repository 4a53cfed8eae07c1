package dvb_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
)

// mockProps matches a property slice of length n.
func mockProps(n int) interface{} {
	return mock.MatchedBy(func(props []dvb.Property) bool { return len(props) == n })
}

// anyReply matches any slave reply pointer.
func anyReply() interface{} {
	return mock.AnythingOfType("*dvb.DiseqcSlaveReply")
}
