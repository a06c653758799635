package main

import (
	"fmt"
)

// GenerateGoService generates Go code for a ROS 2 service type without
// knowledge of the rest of the manifest.
func GenerateGoService(srv ServiceDefinition, prefix string) ([]byte, error) {
	return NewGenerator(&CodegenManifest{}, prefix).Service(srv)
}

// GenerateGoAction generates Go code for a ROS 2 action type without
// knowledge of the rest of the manifest.
func GenerateGoAction(action ActionDefinition, prefix string) ([]byte, error) {
	return NewGenerator(&CodegenManifest{}, prefix).Action(action)
}

// Service generates the service marker type and its Request/Response
// messages, registered as "pkg::srv::Name_Request" and "pkg::srv::Name_Response".
func (gen *Generator) Service(srv ServiceDefinition) ([]byte, error) {
	pkgName := sanitizePackageName(srv.Package)
	g := &CodeBuilder{currentPkg: pkgName}

	reqName := srv.Name + "Request"
	respName := srv.Name + "Response"
	request := newMessageSpec(srv.Request, reqName, "srv", srv.Name+"_Request")
	request.Namespace = srv.Package + "::srv"
	response := newMessageSpec(srv.Response, respName, "srv", srv.Name+"_Response")
	response.Namespace = srv.Package + "::srv"

	gen.generateHeader(g, request, response)

	g.P("// %s is a ROS 2 service type", srv.Name)
	g.P("// Full name: %s", srv.FullName)
	g.P("")

	// Use DDS-qualified service type name so Zenoh key expressions match rmw_zenoh_cpp and ros-z Rust.
	ddsSvcTypeName := fmt.Sprintf("%s::srv::dds_::%s_", srv.Package, srv.Name)
	g.P("const (")
	g.In()
	g.P("%s_TypeName = %q", srv.Name, ddsSvcTypeName)
	g.P("%s_TypeHash = %q", srv.Name, srv.TypeHash)
	g.Out()
	g.P(")")
	g.P("")

	g.P("// %s represents the service type marker", srv.Name)
	g.P("type %s struct{}", srv.Name)
	g.P("")
	g.P("func (s *%s) TypeName() string { return %s_TypeName }", srv.Name, srv.Name)
	g.P("func (s *%s) TypeHash() string { return %s_TypeHash }", srv.Name, srv.Name)
	g.P("func (s *%s) GetRequest() rosz.CDRMessage { return &%s{} }", srv.Name, reqName)
	g.P("func (s *%s) GetResponse() rosz.CDRMessage { return &%s{} }", srv.Name, respName)
	g.P("")

	gen.generateMessage(g, request)
	gen.generateMessage(g, response)

	return g.Bytes()
}

// Action generates the action marker type and its Goal/Result/Feedback
// messages, and exposes the compound sub-service hashes for interop with
// rmw_zenoh_cpp.
func (gen *Generator) Action(action ActionDefinition) ([]byte, error) {
	pkgName := sanitizePackageName(action.Package)
	g := &CodeBuilder{currentPkg: pkgName}

	goalName := action.Name + "Goal"
	resultName := action.Name + "Result"
	feedbackName := action.Name + "Feedback"

	specs := []messageSpec{actionSpec(action, action.Goal, goalName, "_Goal")}
	if action.Result != nil {
		specs = append(specs, actionSpec(action, *action.Result, resultName, "_Result"))
	}
	if action.Feedback != nil {
		specs = append(specs, actionSpec(action, *action.Feedback, feedbackName, "_Feedback"))
	}

	gen.generateHeader(g, specs...)

	g.P("// %s is a ROS 2 action type", action.Name)
	g.P("// Full name: %s", action.FullName)
	g.P("")

	// TypeName uses the ros-z internal format (not DDS).
	// Sub-service compound hashes are the DDS RIHS01 hashes used by rmw_zenoh_cpp.
	g.P("const (")
	g.In()
	g.P("%s_TypeName = %q", action.Name, action.FullName)
	g.P("%s_TypeHash = %q", action.Name, action.TypeHash)
	g.P("%s_SendGoalHash = %q", action.Name, action.SendGoalHash)
	g.P("%s_GetResultHash = %q", action.Name, action.GetResultHash)
	g.P("%s_CancelGoalHash = %q", action.Name, action.CancelGoalHash)
	g.P("%s_FeedbackMessageHash = %q", action.Name, action.FeedbackMessageHash)
	g.P("%s_StatusHash = %q", action.Name, action.StatusHash)
	g.Out()
	g.P(")")
	g.P("")

	g.P("// %s is the action type marker", action.Name)
	g.P("type %s struct{}", action.Name)
	g.P("")
	g.P("func (a *%s) TypeName() string { return %s_TypeName }", action.Name, action.Name)
	g.P("func (a *%s) TypeHash() string { return %s_TypeHash }", action.Name, action.Name)
	g.P("func (a *%s) GetGoal() rosz.CDRMessage { return &%s{} }", action.Name, goalName)
	if action.Result != nil {
		g.P("func (a *%s) GetResult() rosz.CDRMessage { return &%s{} }", action.Name, resultName)
	} else {
		g.P("func (a *%s) GetResult() rosz.CDRMessage { return nil }", action.Name)
	}
	if action.Feedback != nil {
		g.P("func (a *%s) GetFeedback() rosz.CDRMessage { return &%s{} }", action.Name, feedbackName)
	} else {
		g.P("func (a *%s) GetFeedback() rosz.CDRMessage { return nil }", action.Name)
	}
	g.P("")

	g.P("// SendGoalHash returns the compound RIHS01 hash for the SendGoal sub-service.")
	g.P("func (a *%s) SendGoalHash() string { return %s_SendGoalHash }", action.Name, action.Name)
	g.P("// GetResultHash returns the compound RIHS01 hash for the GetResult sub-service.")
	g.P("func (a *%s) GetResultHash() string { return %s_GetResultHash }", action.Name, action.Name)
	g.P("// CancelGoalHash returns the compound RIHS01 hash for the CancelGoal sub-service.")
	g.P("func (a *%s) CancelGoalHash() string { return %s_CancelGoalHash }", action.Name, action.Name)
	g.P("// FeedbackMessageHash returns the compound RIHS01 hash for the FeedbackMessage topic.")
	g.P("func (a *%s) FeedbackMessageHash() string { return %s_FeedbackMessageHash }", action.Name, action.Name)
	g.P("// StatusHash returns the compound RIHS01 hash for the GoalStatusArray topic.")
	g.P("func (a *%s) StatusHash() string { return %s_StatusHash }", action.Name, action.Name)
	g.P("")

	for _, spec := range specs {
		gen.generateMessage(g, spec)
	}

	return g.Bytes()
}

func actionSpec(action ActionDefinition, msg MessageDefinition, goName, suffix string) messageSpec {
	spec := newMessageSpec(msg, goName, "action", action.Name+suffix)
	spec.Namespace = action.Package + "::action"
	return spec
}
