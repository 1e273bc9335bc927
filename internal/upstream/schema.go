package upstream

import (
	"bytes"
	"fmt"
	"guildpreview/internal/models"
	"strconv"

	json "github.com/goccy/go-json"
)

// DecodeTemplate checks a template API body against the expected shape and
// converts it in one step. Any departure rejects the whole payload with a
// *models.ValidationError; unknown keys are ignored.
func DecodeTemplate(body []byte) (*models.Template, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &models.ValidationError{Path: "$", Reason: "malformed JSON: " + err.Error()}
	}

	root, err := asObject(raw, "$")
	if err != nil {
		return nil, err
	}

	tpl := &models.Template{}
	if tpl.Name, err = stringField(root, "name", "$"); err != nil {
		return nil, err
	}
	if tpl.Code, err = optionalStringField(root, "code", "$"); err != nil {
		return nil, err
	}
	if tpl.Description, err = optionalStringField(root, "description", "$"); err != nil {
		return nil, err
	}

	guild, err := objectField(root, "serialized_source_guild", "$")
	if err != nil {
		return nil, err
	}
	guildPath := "$.serialized_source_guild"

	roles, err := arrayField(guild, "roles", guildPath)
	if err != nil {
		return nil, err
	}
	tpl.Roles = make([]models.RoleRecord, 0, len(roles))
	for i, item := range roles {
		role, err := decodeRole(item, fmt.Sprintf("%s.roles[%d]", guildPath, i))
		if err != nil {
			return nil, err
		}
		tpl.Roles = append(tpl.Roles, role)
	}

	channels, err := arrayField(guild, "channels", guildPath)
	if err != nil {
		return nil, err
	}
	tpl.Channels = make([]models.ChannelRecord, 0, len(channels))
	for i, item := range channels {
		channel, err := decodeChannel(item, fmt.Sprintf("%s.channels[%d]", guildPath, i))
		if err != nil {
			return nil, err
		}
		tpl.Channels = append(tpl.Channels, channel)
	}

	return tpl, nil
}

func decodeRole(v any, path string) (models.RoleRecord, error) {
	var role models.RoleRecord
	obj, err := asObject(v, path)
	if err != nil {
		return role, err
	}
	if role.ID, err = intField(obj, "id", path); err != nil {
		return role, err
	}
	if role.Name, err = stringField(obj, "name", path); err != nil {
		return role, err
	}
	if role.Color, err = intField(obj, "color", path); err != nil {
		return role, err
	}
	return role, nil
}

func decodeChannel(v any, path string) (models.ChannelRecord, error) {
	var channel models.ChannelRecord
	obj, err := asObject(v, path)
	if err != nil {
		return channel, err
	}
	if channel.ID, err = intField(obj, "id", path); err != nil {
		return channel, err
	}
	if channel.Name, err = stringField(obj, "name", path); err != nil {
		return channel, err
	}
	if channel.ParentID, err = nullableIntField(obj, "parent_id", path); err != nil {
		return channel, err
	}
	if channel.Position, err = intField(obj, "position", path); err != nil {
		return channel, err
	}
	return channel, nil
}

func invalid(path, format string, args ...any) error {
	return &models.ValidationError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

func asObject(v any, path string) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, invalid(path, "expected object, got %s", kindOf(v))
	}
	return obj, nil
}

func field(obj map[string]any, key, path string) (any, string, error) {
	p := path + "." + key
	v, ok := obj[key]
	if !ok {
		return nil, p, invalid(p, "required")
	}
	return v, p, nil
}

func objectField(obj map[string]any, key, path string) (map[string]any, error) {
	v, p, err := field(obj, key, path)
	if err != nil {
		return nil, err
	}
	return asObject(v, p)
}

func arrayField(obj map[string]any, key, path string) ([]any, error) {
	v, p, err := field(obj, key, path)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, invalid(p, "expected array, got %s", kindOf(v))
	}
	return arr, nil
}

func stringField(obj map[string]any, key, path string) (string, error) {
	v, p, err := field(obj, key, path)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", invalid(p, "expected string, got %s", kindOf(v))
	}
	return s, nil
}

// optionalStringField accepts a missing key or null as "".
func optionalStringField(obj map[string]any, key, path string) (string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", invalid(path+"."+key, "expected string or null, got %s", kindOf(v))
	}
	return s, nil
}

func intField(obj map[string]any, key, path string) (int64, error) {
	v, p, err := field(obj, key, path)
	if err != nil {
		return 0, err
	}
	return asInt(v, p)
}

// nullableIntField requires the key to be present; null maps to nil.
func nullableIntField(obj map[string]any, key, path string) (*int64, error) {
	v, p, err := field(obj, key, path)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	n, err := asInt(v, p)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func asInt(v any, path string) (int64, error) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, invalid(path, "expected number, got %s", kindOf(v))
	}
	n, err := strconv.ParseInt(num.String(), 10, 64)
	if err != nil {
		return 0, invalid(path, "expected integer, got %s", num.String())
	}
	return n, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
